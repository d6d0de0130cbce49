package content

import "testing"

func TestDefaultConfigIsValid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("default config must validate: %v", err)
	}
}

func TestConfigValidate(t *testing.T) {
	cfg := DefaultConfig()
	cfg.CorpusDir = ""
	if err := cfg.Validate(); err == nil {
		t.Fatal("empty corpus dir must fail validation")
	}

	cfg = DefaultConfig()
	cfg.Logging.Level = "shout"
	if err := cfg.Validate(); err == nil {
		t.Fatal("unknown log level must fail validation")
	}

	cfg = DefaultConfig()
	cfg.Logging.Format = "xml"
	if err := cfg.Validate(); err == nil {
		t.Fatal("unknown log format must fail validation")
	}
}
