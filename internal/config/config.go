// Package config collects the settings of the use0mk command from defaults,
// an optional JSON file, command-line flags and environment variables, in
// that order of precedence. A .env file in the working directory is loaded
// into the environment first.
package config

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/atinyakov/use0mk/pkg/use0mk"
)

// Options holds the configuration values for the application.
type Options struct {
	// Username is the 0.mk account name, optional.
	Username string `json:"username"`

	// APIKey is the 0.mk API key, optional.
	APIKey string `json:"api_key"`

	// ShortenURI is the endpoint of the shorten call.
	ShortenURI string `json:"shorten_uri"`

	// PreviewURI is the endpoint of the preview call.
	PreviewURI string `json:"preview_uri"`

	// Domain is the host short links live on.
	Domain string `json:"domain"`

	// MaxRedirects bounds the redirects followed by a single API call.
	MaxRedirects int `json:"max_redirects"`

	// Timeout limits every HTTP request to 0.mk.
	Timeout Duration `json:"timeout"`

	LogLevel    string `json:"log_level"`
	LogEncoding string `json:"log_encoding"`

	// ServerAddress is the listen address of the gateway (ip:port).
	ServerAddress string `json:"server_address"`

	// TrustedSubnet restricts batch deletes on the gateway, empty allows all.
	TrustedSubnet string `json:"trusted_subnet"`

	// CORSOrigins is a comma separated list of origins allowed to call the
	// gateway from a browser, empty disables CORS.
	CORSOrigins string `json:"cors_origins"`

	// DeleteBatchSize is how many queued deletes trigger an early flush.
	DeleteBatchSize int `json:"delete_batch_size"`

	// DeleteFlushInterval is how often queued deletes are flushed.
	DeleteFlushInterval Duration `json:"delete_flush_interval"`

	// Config is the path of the JSON configuration file.
	Config string `json:"-"`
}

// Default returns the built-in configuration, pointing at the public 0.mk API.
func Default() *Options {
	ep := use0mk.DefaultEndpoints()
	return &Options{
		ShortenURI:          ep.ShortenURI,
		PreviewURI:          ep.PreviewURI,
		Domain:              ep.Domain,
		MaxRedirects:        use0mk.DefaultMaxRedirects,
		Timeout:             Duration{30 * time.Second},
		LogLevel:            "info",
		LogEncoding:         "console",
		ServerAddress:       "localhost:8080",
		DeleteBatchSize:     25,
		DeleteFlushInterval: Duration{10 * time.Second},
	}
}

// Endpoints returns the API endpoints for a use0mk.Client.
func (o *Options) Endpoints() use0mk.Endpoints {
	return use0mk.Endpoints{
		ShortenURI: o.ShortenURI,
		PreviewURI: o.PreviewURI,
		Domain:     o.Domain,
	}
}

// Credentials returns the account used for API calls.
func (o *Options) Credentials() use0mk.Credentials {
	return use0mk.Credentials{Username: o.Username, APIKey: o.APIKey}
}

// Origins splits CORSOrigins, dropping blanks.
func (o *Options) Origins() []string {
	var out []string
	for _, origin := range strings.Split(o.CORSOrigins, ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			out = append(out, origin)
		}
	}
	return out
}

func bindFlags(fs *flag.FlagSet, o *Options) {
	fs.StringVar(&o.Username, "u", o.Username, "0.mk username")
	fs.StringVar(&o.APIKey, "k", o.APIKey, "0.mk API key")
	fs.StringVar(&o.ShortenURI, "shorten-uri", o.ShortenURI, "shorten API endpoint")
	fs.StringVar(&o.PreviewURI, "preview-uri", o.PreviewURI, "preview API endpoint")
	fs.StringVar(&o.Domain, "domain", o.Domain, "domain of short links")
	fs.IntVar(&o.MaxRedirects, "r", o.MaxRedirects, "max redirects per API call")
	fs.Var(&o.Timeout, "t", "HTTP timeout")
	fs.StringVar(&o.LogLevel, "l", o.LogLevel, "log level")
	fs.StringVar(&o.LogEncoding, "log-encoding", o.LogEncoding, "log encoding: json or console")
	fs.StringVar(&o.ServerAddress, "a", o.ServerAddress, "gateway ip:port")
	fs.StringVar(&o.TrustedSubnet, "subnet", o.TrustedSubnet, "trusted subnet for batch deletes")
	fs.StringVar(&o.CORSOrigins, "cors", o.CORSOrigins, "comma separated origins allowed by CORS")
	fs.IntVar(&o.DeleteBatchSize, "batch", o.DeleteBatchSize, "delete batch size")
	fs.Var(&o.DeleteFlushInterval, "flush", "delete flush interval")
	fs.StringVar(&o.Config, "c", o.Config, "path to JSON config file")
}

// Parse builds the options from args (without the program name) and the
// environment. It returns the remaining positional arguments.
func Parse(args []string) (*Options, []string, error) {
	if err := LoadEnvFile(".env"); err != nil {
		return nil, nil, err
	}

	// first pass only finds the config file
	scratch := Default()
	pre := flag.NewFlagSet("use0mk", flag.ContinueOnError)
	pre.SetOutput(io.Discard)
	bindFlags(pre, scratch)
	// errors are reported by the second pass
	_ = pre.Parse(args)

	options := Default()
	path := scratch.Config
	if env := os.Getenv("CONFIG"); env != "" {
		path = env
	}
	if path != "" {
		if err := loadFile(path, options); err != nil {
			return nil, nil, err
		}
	}

	flags := flag.NewFlagSet("use0mk", flag.ContinueOnError)
	bindFlags(flags, options)
	if err := flags.Parse(args); err != nil {
		return nil, nil, err
	}
	options.Config = path

	if err := applyEnv(options); err != nil {
		return nil, nil, err
	}

	return options, flags.Args(), nil
}

// LoadEnvFile loads variables from a dotenv file without overriding the
// ones already set. A missing file is not an error.
func LoadEnvFile(path string) error {
	err := godotenv.Load(path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

func loadFile(path string, o *Options) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open config: %w", err)
	}
	defer f.Close()

	if err := json.NewDecoder(f).Decode(o); err != nil {
		return fmt.Errorf("decode config %s: %w", path, err)
	}
	return nil
}

func applyEnv(o *Options) error {
	strs := map[string]*string{
		"USE0MK_USERNAME": &o.Username,
		"USE0MK_APIKEY":   &o.APIKey,
		"SHORTEN_URI":     &o.ShortenURI,
		"PREVIEW_URI":     &o.PreviewURI,
		"SERVICE_DOMAIN":  &o.Domain,
		"LOG_LEVEL":       &o.LogLevel,
		"LOG_ENCODING":    &o.LogEncoding,
		"SERVER_ADDRESS":  &o.ServerAddress,
		"TRUSTED_SUBNET":  &o.TrustedSubnet,
		"CORS_ORIGINS":    &o.CORSOrigins,
	}
	for key, dst := range strs {
		if v := os.Getenv(key); v != "" {
			*dst = v
		}
	}

	ints := map[string]*int{
		"MAX_REDIRECTS":     &o.MaxRedirects,
		"DELETE_BATCH_SIZE": &o.DeleteBatchSize,
	}
	for key, dst := range ints {
		if v := os.Getenv(key); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil {
				return fmt.Errorf("%s: %w", key, err)
			}
			*dst = n
		}
	}

	durations := map[string]*Duration{
		"HTTP_TIMEOUT":          &o.Timeout,
		"DELETE_FLUSH_INTERVAL": &o.DeleteFlushInterval,
	}
	for key, dst := range durations {
		if v := os.Getenv(key); v != "" {
			if err := dst.Set(v); err != nil {
				return fmt.Errorf("%s: %w", key, err)
			}
		}
	}
	return nil
}
