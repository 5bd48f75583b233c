// Package apperror defines the error taxonomy shared by every layer of the Menu Manager.
//
// Three kinds are distinguished:
//   - InvalidArgument: blank required fields, identifiers where a new entity was expected,
//     empty required collections, duplicate identifiers in one submission.
//   - NotFound: a referenced parent, entity or Feature name does not exist at the point of use.
//   - Conflict: the store rejected an operation on a uniqueness or foreign-key constraint.
//
// Errors are created with the kind constructors and matched with errors.Is against the
// exported sentinels, so wrapping with fmt.Errorf("...: %w", err) keeps the kind intact.
//
// # Usage
//
//	if n == 0 {
//	    return apperror.NotFound("menu %d does not exist", id)
//	}
//
//	status := apperror.HTTPStatus(err) // 400, 404, 409 or 500
package apperror
