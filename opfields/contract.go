// Package opfields builds the GraphQL fields for the eight CRUDDALS
// operations: create, read, update, delete, deactivate, activate, list and
// search. contract.go defines the naming conventions shared between the
// field constructors and the schema builder. Both MUST use these functions
// so generated names stay in sync.
package opfields

import "github.com/cruddals/cruddals/gqlstrings"

// NamingContract derives every generated operation and payload name from
// the model's singular and plural PascalCase names.
type NamingContract struct{}

// Names is the singleton instance of NamingContract.
var Names = NamingContract{}

// CreateName returns the mutation field name for bulk creation.
// Example: "Users" -> "createUsers"
func (c NamingContract) CreateName(pluralPascal string) string {
	return gqlstrings.ToLowerCamel("Create" + pluralPascal)
}

// ReadName returns the query field name for reading a single record.
// Example: "User" -> "readUser"
func (c NamingContract) ReadName(singularPascal string) string {
	return gqlstrings.ToLowerCamel("Read" + singularPascal)
}

// UpdateName returns the mutation field name for bulk updates.
// Example: "Users" -> "updateUsers"
func (c NamingContract) UpdateName(pluralPascal string) string {
	return gqlstrings.ToLowerCamel("Update" + pluralPascal)
}

// DeleteName returns the mutation field name for deletion by filter.
// Example: "Users" -> "deleteUsers"
func (c NamingContract) DeleteName(pluralPascal string) string {
	return gqlstrings.ToLowerCamel("Delete" + pluralPascal)
}

// DeactivateName returns the mutation field name for deactivation.
// Example: "Users" -> "deactivateUsers"
func (c NamingContract) DeactivateName(pluralPascal string) string {
	return gqlstrings.ToLowerCamel("Deactivate" + pluralPascal)
}

// ActivateName returns the mutation field name for activation.
// Example: "Users" -> "activateUsers"
func (c NamingContract) ActivateName(pluralPascal string) string {
	return gqlstrings.ToLowerCamel("Activate" + pluralPascal)
}

// ListName returns the query field name for the unpaginated listing.
// Example: "Users" -> "listUsers"
func (c NamingContract) ListName(pluralPascal string) string {
	return gqlstrings.ToLowerCamel("List" + pluralPascal)
}

// SearchName returns the query field name for the paginated search.
// Example: "Users" -> "searchUsers"
func (c NamingContract) SearchName(pluralPascal string) string {
	return gqlstrings.ToLowerCamel("Search" + pluralPascal)
}

// PayloadName returns the payload type name for a mutation operation.
// Example: ("Create", "Users") -> "CreateUsersPayload"
func (c NamingContract) PayloadName(operation, pluralPascal string) string {
	return operation + pluralPascal + "Payload"
}
