// Package utils provides small parsing helpers shared by the HTTP handlers, such as the
// comma separated identifier lists accepted by bulk get and delete routes.
package utils
