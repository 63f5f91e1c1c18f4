package sqlite

// Schema DDL. AUTOINCREMENT keeps SQLite from handing out the ID of a
// deleted row again.
const createContacts = `CREATE TABLE contacts (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    name TEXT NOT NULL,
    phone TEXT NOT NULL,
    email TEXT NOT NULL
);`

// schemaStatements lists the DDL executed on Open, in order.
var schemaStatements = []string{
	createContacts,
}
