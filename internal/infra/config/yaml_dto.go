package config

// YAMLConfig mirrors linkcheck.yaml. Pointers distinguish "unset" from zero
// values so defaults survive partial files.
type YAMLConfig struct {
	Linkcheck struct {
		Probe YAMLProbe `yaml:"probe"`
		Paths struct {
			ExportsDir string `yaml:"exports_dir"`
			RunsDir    string `yaml:"runs_dir"`
		} `yaml:"paths"`
		Runs struct {
			Save *bool `yaml:"save"`
		} `yaml:"runs"`
	} `yaml:"linkcheck"`
}

type YAMLProbe struct {
	Timeout         string   `yaml:"timeout"`
	UserAgent       string   `yaml:"user_agent"`
	MaxBodyBytes    *int64   `yaml:"max_body_bytes"`
	RatePerSecond   *float64 `yaml:"rate_per_second"`
	DetailedReasons *bool    `yaml:"detailed_reasons"`
}
