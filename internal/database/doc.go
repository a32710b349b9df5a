// Package database provides the data access layer for the sighting store.
//
// # Architecture
//
// The database layer is organized into table-specific sub-packages:
//
//	database/
//	├── database.go      # Connection setup, schema creation, transactions
//	├── transaction.go   # Transaction handle exposing the domain operations
//	├── errors.go        # Error kinds (not found, already exists, invalid reference)
//	├── species/         # Species catalog and categories
//	├── checklists/      # Checklists and species membership
//	└── sightings/       # Append-only observation records
//
// # Transactions
//
// Every read and write goes through Database.Transaction. The callback gets a
// *Transaction whose operations all share one database transaction:
//
//	db, err := database.NewDatabase(path)
//	err = db.Create()
//
//	err = db.Transaction(func(tx *database.Transaction) error {
//		if err := tx.AddChecklist("Backyard"); err != nil {
//			return err
//		}
//		return tx.AddSpeciesToChecklist("Backyard", "American Robin")
//	})
//
// Returning an error from the callback rolls back everything it wrote.
//
// # Errors
//
// Lookups that miss return errors wrapping ErrNotFound (ErrChecklistNotFound)
// or ErrInvalidReference (*UnrecognizedSpeciesError). Unique constraint
// violations are reported as ErrAlreadyExists. None of these leave partial
// writes behind within the failing operation, so a caller may choose to
// continue the transaction after a miss.
package database
