package config

import (
	"os"
	"regexp"
	"sort"
	"time"

	"github.com/cloudfoundry/database-backup-and-archive/compressor"
	"github.com/cloudfoundry/database-backup-and-archive/database"
	boshsys "github.com/cloudfoundry/bosh-utils/system"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

const (
	DefaultPath          = "dbb.yml"
	PathEnvironmentKey   = "DBB_CONFIG"
	defaultDumpsPath     = "dumps"
	defaultS3Path        = "dumps"
	defaultUploadsWindow = time.Second
)

type Config struct {
	DefaultConnection string                `yaml:"default_connection"`
	DumpsPath         string                `yaml:"dumps_path"`
	Compress          bool                  `yaml:"compress"`
	Compressor        string                `yaml:"compressor"`
	Connections       map[string]Connection `yaml:"connections"`
	S3                S3                    `yaml:"s3"`
	Disks             map[string]Disk       `yaml:"disks"`
	Uploads           Uploads               `yaml:"uploads"`
}

type Connection struct {
	Driver          string `yaml:"driver"`
	Host            string `yaml:"host"`
	Port            int    `yaml:"port"`
	Database        string `yaml:"database"`
	Username        string `yaml:"username"`
	Password        string `yaml:"password"`
	DumpCommandPath string `yaml:"dump_command_path"`
}

type S3 struct {
	Path            string `yaml:"path"`
	Region          string `yaml:"region"`
	Endpoint        string `yaml:"endpoint"`
	AccessKeyID     string `yaml:"access_key_id"`
	SecretAccessKey string `yaml:"secret_access_key"`
	ForcePathStyle  bool   `yaml:"force_path_style"`
	RoleARN         string `yaml:"role_arn"`
	PartSize        int64  `yaml:"part_size"`
}

type Disk struct {
	Driver                string `yaml:"driver"`
	Root                  string `yaml:"root"`
	Host                  string `yaml:"host"`
	Username              string `yaml:"username"`
	PrivateKeyPath        string `yaml:"private_key_path"`
	KnownHostsPath        string `yaml:"known_hosts_path"`
	InsecureIgnoreHostKey bool   `yaml:"insecure_ignore_host_key"`
}

// Uploads bounds how many uploads may start per ConnectionWindow. A zero
// MaxConnections means unbounded.
type Uploads struct {
	MaxConnections   int           `yaml:"max_connections"`
	ConnectionWindow time.Duration `yaml:"connection_window"`
}

var environmentReference = regexp.MustCompile(`\$\{([A-Za-z_][A-Za-z0-9_]*)\}`)

// ResolvePath picks the config file: the flag value, then $DBB_CONFIG,
// then dbb.yml in the working directory.
func ResolvePath(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	if fromEnvironment := os.Getenv(PathEnvironmentKey); fromEnvironment != "" {
		return fromEnvironment
	}
	return DefaultPath
}

// Load reads the file at path, expands ${VAR} references from the
// environment and fills in defaults. The result is not validated.
func Load(fileSystem boshsys.FileSystem, path string) (Config, error) {
	if !fileSystem.FileExists(path) {
		return Config{}, errors.Errorf("config file %s not found", path)
	}

	contents, err := fileSystem.ReadFile(path)
	if err != nil {
		return Config{}, errors.Wrapf(err, "could not read config file %s", path)
	}

	expanded, err := expandEnvironment(contents)
	if err != nil {
		return Config{}, errors.Wrapf(err, "could not load config file %s", path)
	}

	var config Config
	if err := yaml.UnmarshalStrict(expanded, &config); err != nil {
		return Config{}, errors.Wrapf(err, "could not parse config file %s", path)
	}

	config.applyDefaults()
	return config, nil
}

func expandEnvironment(contents []byte) ([]byte, error) {
	var missing []string
	expanded := environmentReference.ReplaceAllFunc(contents, func(reference []byte) []byte {
		name := string(environmentReference.FindSubmatch(reference)[1])
		value, ok := os.LookupEnv(name)
		if !ok {
			missing = append(missing, name)
			return reference
		}
		return []byte(value)
	})

	if len(missing) > 0 {
		return nil, errors.Errorf("environment variable %s is not set", missing[0])
	}
	return expanded, nil
}

func (c *Config) applyDefaults() {
	if c.DumpsPath == "" {
		c.DumpsPath = defaultDumpsPath
	}
	if c.Compressor == "" {
		c.Compressor = compressor.Gzip
	}
	if c.S3.Path == "" {
		c.S3.Path = defaultS3Path
	}
	if c.Uploads.MaxConnections > 0 && c.Uploads.ConnectionWindow == 0 {
		c.Uploads.ConnectionWindow = defaultUploadsWindow
	}
}

func (c Config) Validate() error {
	if len(c.Connections) == 0 {
		return errors.New("no database connections are configured")
	}

	if c.DefaultConnection != "" {
		if _, ok := c.Connections[c.DefaultConnection]; !ok {
			return errors.Errorf("default_connection %s is not configured", c.DefaultConnection)
		}
	}

	for _, name := range sortedKeys(c.Connections) {
		connection := c.Connections[name]
		if !database.IsSupportedDriver(connection.Driver) {
			return errors.Errorf("connection %s uses unsupported driver %q", name, connection.Driver)
		}
		if connection.Database == "" {
			return errors.Errorf("connection %s has no database", name)
		}
	}

	if !compressor.IsSupported(c.Compressor) {
		return errors.Errorf("unknown compressor %q", c.Compressor)
	}

	for _, name := range sortedKeys(c.Disks) {
		if err := c.Disks[name].validate(); err != nil {
			return errors.Wrapf(err, "disk %s", name)
		}
	}

	if c.Uploads.MaxConnections < 0 || c.Uploads.MaxConnections > 100 {
		return errors.New("uploads.max_connections must be between 0 and 100")
	}
	if c.Uploads.ConnectionWindow < 0 || c.Uploads.ConnectionWindow > time.Hour {
		return errors.New("uploads.connection_window must be between 0 and 3600 seconds")
	}

	return nil
}

func (d Disk) validate() error {
	switch d.Driver {
	case "local":
		if d.Root == "" {
			return errors.New("local disks need a root")
		}
	case "sftp":
		if d.Host == "" || d.Username == "" || d.PrivateKeyPath == "" || d.Root == "" {
			return errors.New("sftp disks need host, username, private_key_path and root")
		}
	default:
		return errors.Errorf("unsupported driver %q", d.Driver)
	}
	return nil
}

// Connection returns the named connection, or the default connection when
// name is empty.
func (c Config) Connection(name string) (string, Connection, error) {
	if name == "" {
		name = c.DefaultConnection
	}
	if name == "" {
		if len(c.Connections) != 1 {
			return "", Connection{}, errors.New("no database was given and no default_connection is configured")
		}
		for onlyName := range c.Connections {
			name = onlyName
		}
	}

	connection, ok := c.Connections[name]
	if !ok {
		return "", Connection{}, errors.Errorf("database connection %s is not configured", name)
	}
	return name, connection, nil
}

func sortedKeys[V any](values map[string]V) []string {
	keys := make([]string, 0, len(values))
	for key := range values {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
