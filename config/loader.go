package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
)

// Load reads <name>.yaml from the first directory that has it, then overlays
// environment variables. ASSIGNMENT_SEARCHRADIUSKM overrides
// assignment.searchRadiusKm: segments are matched against the keys already
// present in the file, ignoring case and punctuation.
func Load[T any](name string, dirs ...string) (*T, error) {
	path, err := locate(name+".yaml", dirs)
	if err != nil {
		return nil, err
	}

	k := koanf.New(".")
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "failed to read %s", path)
	}

	keys := envKeyMapper{tree: k.Raw()}
	if err := k.Load(env.Provider(".", env.Opt{
		TransformFunc: func(key, value string) (string, any) {
			return keys.path(key), value
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "failed to apply environment overrides")
	}

	out := new(T)
	if err := k.UnmarshalWithConf("", out, koanf.UnmarshalConf{DecoderConfig: decoderConfig(out)}); err != nil {
		return nil, errors.Wrapf(err, "failed to decode %s", path)
	}

	return out, nil
}

func locate(filename string, dirs []string) (string, error) {
	if len(dirs) == 0 {
		dirs = []string{"."}
	}

	for _, dir := range dirs {
		candidate := filepath.Join(dir, filename)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, nil
		}
	}

	return "", errors.Errorf("%s not found in %s", filename, strings.Join(dirs, ", "))
}

func decoderConfig(out any) *mapstructure.DecoderConfig {
	return &mapstructure.DecoderConfig{
		Result:           out,
		WeaklyTypedInput: true,
		DecodeHook:       mapstructure.StringToTimeDurationHookFunc(),
		MatchName:        strings.EqualFold,
	}
}

// envKeyMapper turns SECTION_FIELD names into koanf paths that reuse the
// spelling of keys loaded from the file.
type envKeyMapper struct {
	tree map[string]any
}

func (m envKeyMapper) path(envKey string) string {
	var parts []string
	node := m.tree

	for _, segment := range strings.Split(strings.ToLower(envKey), "_") {
		if segment == "" {
			continue
		}

		key, child, ok := lookupKey(node, segment)
		if !ok {
			key, child = segment, nil
		}
		parts = append(parts, key)
		node = child
	}

	return strings.Join(parts, ".")
}

func lookupKey(node map[string]any, segment string) (string, map[string]any, bool) {
	want := foldKey(segment)
	for key, value := range node {
		if foldKey(key) == want {
			child, _ := value.(map[string]any)

			return key, child, true
		}
	}

	return "", nil, false
}

// foldKey lowercases s and drops everything but letters and digits.
func foldKey(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return unicode.ToLower(r)
		}

		return -1
	}, s)
}

// replicasFromEnv reads read replicas from POSTGRES_REPLICAS_<n>_HOST, _PORT,
// _USERNAME and _PASSWORD, stopping at the first index without a host and port.
func replicasFromEnv(lookup func(string) (string, bool)) []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig

	for i := 0; ; i++ {
		prefix := "POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_"
		host, _ := lookup(prefix + "HOST")
		port, _ := lookup(prefix + "PORT")
		if host == "" || port == "" {
			return replicas
		}

		user, _ := lookup(prefix + "USERNAME")
		password, _ := lookup(prefix + "PASSWORD")
		replicas = append(replicas, postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: user,
			Password: password,
		})
	}
}
