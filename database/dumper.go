package database

import (
	"github.com/cloudfoundry/database-backup-and-archive/orchestrator"
	boshsys "github.com/cloudfoundry/bosh-utils/system"
	"github.com/pkg/errors"
)

const (
	MySQLDriver    = "mysql"
	PostgresDriver = "pgsql"
	SQLiteDriver   = "sqlite"
	MongoDBDriver  = "mongodb"
)

// NewDumper returns the dumper for the connection's driver.
func NewDumper(connection Connection, runner CommandRunner, fileSystem boshsys.FileSystem) (orchestrator.Dumper, error) {
	switch connection.Driver {
	case MySQLDriver:
		return NewMySQLDumper(connection, runner, fileSystem), nil
	case PostgresDriver, "postgres":
		return NewPostgresDumper(connection, runner, fileSystem), nil
	case SQLiteDriver:
		return NewSQLiteDumper(connection, fileSystem), nil
	case MongoDBDriver:
		return NewMongoDBDumper(connection, runner, fileSystem), nil
	default:
		return nil, errors.Errorf("connection %s uses unsupported driver %q", connection.Name, connection.Driver)
	}
}

func IsSupportedDriver(driver string) bool {
	switch driver {
	case MySQLDriver, PostgresDriver, "postgres", SQLiteDriver, MongoDBDriver:
		return true
	}
	return false
}
