// Package store holds the contact Directory in memory and persists it through
// a Backend.
//
// The Directory is an ordered slice of contact.Record. Insertion order is
// display order and a record's position is its only identity: there is no key
// or index, and lookups are linear scans.
//
// # Persistence
//
// Every Save hands the whole Directory to the Backend, which replaces the
// previous contents in full. There are no incremental writes.
//
//   - CSVFile: the default flat file. A header row with the fixed field names,
//     then one row per record, CRLF line endings. The file is truncated and
//     rewritten on every save, so a crash mid-write can leave it truncated.
//   - SQLite: a single contacts table keyed by position. Save deletes and
//     re-inserts every row inside one transaction.
//
// A missing CSV file loads as an empty Directory. Rows are mapped to fields by
// column position, not by header content.
package store
