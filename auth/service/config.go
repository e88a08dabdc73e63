package service

type Config struct {
	SqliteFile   string `toml:"sqlite_file"`
	Token        string `toml:"token"`
	Expiration   string `toml:"expiration"`
	RootEmail    string `toml:"root_email"`
	RootName     string `toml:"root_name"`
	RootPassword string `toml:"root_password"`
	Rules        []Rule `toml:"rules"`
}

type Rule struct {
	Name   string   `toml:"name"`
	Path   string   `toml:"path"`
	Method []string `toml:"method"`
	Allow  []string `toml:"allow"`
}

// DefaultRules is the built-in route authorization table, applied when the
// config file does not override it. Order matters: the first rule matching
// both path and method decides.
func DefaultRules() []Rule {
	return []Rule{
		{
			Name:   "admin area",
			Path:   "^/admin",
			Method: []string{"*"},
			Allow:  []string{"admin"},
		},
		{
			Name:   "team assignment",
			Path:   "^/players/[0-9]+/team$",
			Method: []string{"PUT", "DELETE"},
			Allow:  []string{"admin", "coach"},
		},
		{
			Name:   "deletions",
			Path:   "^/(teams|players)/[0-9]+$",
			Method: []string{"DELETE"},
			Allow:  []string{"admin"},
		},
		{
			Name:   "mutations",
			Path:   "^/(teams|players)",
			Method: []string{"POST", "PUT"},
			Allow:  []string{"admin", "coach"},
		},
		{
			Name:   "reads",
			Path:   "^/(teams|players)",
			Method: []string{"GET"},
			Allow:  []string{"*"},
		},
	}
}
