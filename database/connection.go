package database

// Connection is a configured database, with secrets already resolved.
// For sqlite, Database is the path of the database file.
type Connection struct {
	Name            string
	Driver          string
	Host            string
	Port            int
	Database        string
	Username        string
	Password        string
	DumpCommandPath string
}
