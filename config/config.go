package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/creasty/defaults"
	"github.com/fsnotify/fsnotify"
	validatorV10 "github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

var validator *validatorV10.Validate

func init() {
	validator = validatorV10.New()
}

func DefaultOptions() Options {
	basePath := os.Getenv("CONFIG_PATH")
	if basePath == "" {
		basePath = "config"
	}

	return Options{
		BasePath: basePath,
		FileName: "config",
		FileType: "yaml",
	}
}

func New(optsArr ...Options) (*Config, error) {
	opts := DefaultOptions()
	if len(optsArr) > 0 {
		opts = optsArr[0]
		base := DefaultOptions()
		if opts.BasePath == "" {
			opts.BasePath = base.BasePath
		}
		if opts.FileName == "" {
			opts.FileName = base.FileName
		}
		if opts.FileType == "" {
			opts.FileType = base.FileType
		}
	}

	instance, err := create(opts)
	if err != nil {
		return nil, err
	}

	return &Config{
		instance: instance,
		opts:     opts,
	}, nil
}

func (c *Config) Bind(instance any) error {
	if c == nil || c.instance == nil {
		return fmt.Errorf("❌ Config instance is nil")
	}

	if instance == nil {
		return fmt.Errorf("❌ Target instance is nil")
	}

	c.watchMutex.Lock()
	defer c.watchMutex.Unlock()

	if err := c.instance.Unmarshal(instance); err != nil {
		return fmt.Errorf("❌ Failed to unmarshal config (path: %s, file: %s.%s): %w",
			c.opts.BasePath, c.opts.FileName, c.opts.FileType, err)
	}

	if c.opts.Watch {
		c.watch(instance)
	}

	return nil
}

func (c *Config) BindWithDefaults(instance any) error {
	if err := defaults.Set(instance); err != nil {
		return fmt.Errorf("❌ Failed to set defaults: %w", err)
	}

	if err := c.Bind(instance); err != nil {
		return err
	}

	if err := defaults.Set(instance); err != nil {
		return fmt.Errorf("❌ Failed to set defaults after unmarshal: %w", err)
	}

	return nil
}

// watch re-binds instance whenever the primary config file changes. The
// viper instance is rebuilt from scratch so overlay files and environment
// overrides survive the re-read.
func (c *Config) watch(instance any) {
	c.watchOnce.Do(func() {
		c.instance.WatchConfig()
		c.instance.OnConfigChange(func(e fsnotify.Event) {
			c.watchMutex.Lock()
			defer c.watchMutex.Unlock()

			if fresh, err := create(c.opts); err == nil {
				c.instance = fresh
			}

			if err := c.instance.Unmarshal(instance); err != nil {
				fmt.Printf("❌ Config watch error: %v\n", err)
				return
			}

			if c.opts.OnChange != nil {
				c.opts.OnChange(e)
			}
		})
	})
}

// Validate runs struct-tag validation on instance, plus its own Validate
// method when it implements Validator.
func Validate(instance any) error {
	if instance == nil {
		return fmt.Errorf("❌ Target instance is nil")
	}

	if err := validator.Struct(instance); err != nil {
		if validationErrors, ok := err.(validatorV10.ValidationErrors); ok {
			var fieldErrors ValidationErrors
			for _, fe := range validationErrors {
				fieldErrors = append(fieldErrors, FieldError{
					Field:   fe.Field(),
					Message: getValidationMessage(fe),
				})
			}
			return fieldErrors
		}
		return err
	}

	if v, ok := instance.(Validator); ok {
		if err := v.Validate(); err != nil {
			return fmt.Errorf("❌ Config validation failed: %w", err)
		}
	}

	return nil
}

func getValidationMessage(fe validatorV10.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "gte":
		return fmt.Sprintf("must be greater than or equal to %s", fe.Param())
	case "lte":
		return fmt.Sprintf("must be less than or equal to %s", fe.Param())
	case "gt":
		return fmt.Sprintf("must be greater than %s", fe.Param())
	case "lt":
		return fmt.Sprintf("must be less than %s", fe.Param())
	case "oneof":
		return fmt.Sprintf("must be one of: %s", fe.Param())
	case "dir":
		return "must be an existing directory"
	default:
		return fmt.Sprintf("failed validation for tag '%s'", fe.Tag())
	}
}

func (c *Config) Export(path string) error {
	if path == "" {
		return fmt.Errorf("❌ Export path is empty")
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, os.ModePerm); err != nil {
		return fmt.Errorf("❌ Failed to create directory %s: %w", dir, err)
	}

	if err := c.instance.WriteConfigAs(path); err != nil {
		return fmt.Errorf("❌ Failed to write config to %s: %w", path, err)
	}

	return nil
}

func (c *Config) Get(key string) any {
	c.watchMutex.RLock()
	defer c.watchMutex.RUnlock()

	return c.instance.Get(key)
}

func (c *Config) Set(key string, value any) {
	c.watchMutex.Lock()
	defer c.watchMutex.Unlock()

	c.instance.Set(key, value)
}

func create(opts Options) (*viper.Viper, error) {
	if opts.EnvFile != "" {
		_ = godotenv.Load(opts.EnvFile)
	}

	paths := configFilePaths(opts)
	if len(paths) == 0 {
		return nil, fmt.Errorf("❌ No configuration file found in path: %s", opts.BasePath)
	}

	v := viper.New()
	v.SetConfigFile(paths[0])
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("❌ Error reading config file %s: %w", paths[0], err)
	}

	for _, path := range paths[1:] {
		v.SetConfigFile(path)
		if err := v.MergeInConfig(); err != nil {
			return nil, fmt.Errorf("❌ Error merging config file %s: %w", path, err)
		}
	}

	// Watch targets the primary file, not the last overlay
	v.SetConfigFile(paths[0])

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	if opts.EnvPrefix != "" {
		v.SetEnvPrefix(opts.EnvPrefix)
	}
	v.AutomaticEnv()

	applyEnvOverrides(v, opts.EnvPrefix)

	return v, nil
}

// applyEnvOverrides checks all config keys and overrides with environment
// variables if they exist, so Unmarshal-based access sees them too. Kebab
// keys fold to underscores: filter.max-width reads FILTER_MAX_WIDTH.
func applyEnvOverrides(v *viper.Viper, envPrefix string) {
	replacer := strings.NewReplacer(".", "_", "-", "_")

	for _, key := range v.AllKeys() {
		envKey := strings.ToUpper(replacer.Replace(key))
		if envPrefix != "" {
			envKey = envPrefix + "_" + envKey
		}

		if envValue := os.Getenv(envKey); envValue != "" {
			v.Set(key, envValue)
		}
	}
}

// configFilePaths resolves the base file plus an optional .local overlay,
// in merge order.
func configFilePaths(opts Options) (paths []string) {
	fileNames := []string{
		opts.FileName,
		fmt.Sprintf("%s.local", opts.FileName),
	}

	for _, fileName := range fileNames {
		file := filepath.Join(opts.BasePath, fmt.Sprintf("%s.%s", fileName, opts.FileType))
		if info, err := os.Stat(file); err == nil && !info.IsDir() {
			paths = append(paths, file)
		}
	}

	return paths
}
