package config

import (
	"flag"
	"os"
	"time"

	"github.com/editiq/editiq/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-d string   database DSN of the remote store
//	-o string   directory for local key-value storage
//	-m string   owner id routed to local storage (demo user)
//	-u string   owner id the CLI acts as
//	-r string   S3 access key
//	-p string   S3 secret key
//	-b string   S3 bucket for backups
//	-g string   S3 region
//	-e string   S3 base endpoint (for S3-compatible stores)
//	-t int      backup upload timeout in seconds
//
// os.Args is filtered through flagx.FilterArgs first so flags owned by other
// components never reach this flag set.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:],
		[]string{"-d", "-o", "-m", "-u", "-r", "-p", "-b", "-g", "-e", "-t"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "database DSN of the remote store")
	fs.StringVar(&cfg.DataDir, "o", cfg.DataDir, "directory for local key-value storage")
	fs.StringVar(&cfg.DemoUserID, "m", cfg.DemoUserID, "owner id routed to local storage")
	fs.StringVar(&cfg.UserID, "u", cfg.UserID, "owner id the CLI acts as")
	fs.StringVar(&cfg.S3RootUser, "r", cfg.S3RootUser, "S3 access key")
	fs.StringVar(&cfg.S3RootPassword, "p", cfg.S3RootPassword, "S3 secret key")
	fs.StringVar(&cfg.S3Bucket, "b", cfg.S3Bucket, "S3 bucket for backups")
	fs.StringVar(&cfg.S3Region, "g", cfg.S3Region, "S3 region")
	fs.StringVar(&cfg.S3BaseEndpoint, "e", cfg.S3BaseEndpoint, "S3 base endpoint")
	uploadTimeout := fs.Int("t", int(cfg.S3UploadTimeout.Seconds()), "backup upload timeout (in seconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.S3UploadTimeout = time.Duration(*uploadTimeout) * time.Second
}
