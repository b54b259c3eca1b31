package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}
	if cfg.Port != "8080" {
		t.Errorf("default Port = %q, want 8080", cfg.Port)
	}
	if cfg.DB.Port != 3306 {
		t.Errorf("default DB.Port = %d, want 3306", cfg.DB.Port)
	}
	if cfg.OfferPrice != 5.00 {
		t.Errorf("default OfferPrice = %v, want 5.00", cfg.OfferPrice)
	}
	if cfg.KafkaBrokers != "" {
		t.Errorf("default KafkaBrokers = %q, want empty", cfg.KafkaBrokers)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("OFFER_PRICE", "6.25")
	t.Setenv("DB_PORT", "3307")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}
	if cfg.Port != "9090" {
		t.Errorf("Port = %q, want 9090", cfg.Port)
	}
	if cfg.OfferPrice != 6.25 {
		t.Errorf("OfferPrice = %v, want 6.25", cfg.OfferPrice)
	}
	if cfg.DB.Port != 3307 {
		t.Errorf("DB.Port = %d, want 3307", cfg.DB.Port)
	}
}

func TestLoadInvalidOfferPrice(t *testing.T) {
	tests := []string{"abc", "-1"}
	for _, v := range tests {
		t.Setenv("OFFER_PRICE", v)
		if _, err := Load(); err == nil {
			t.Errorf("Load() with OFFER_PRICE=%q should fail", v)
		}
	}
}

func TestDSN(t *testing.T) {
	db := DBConfig{Host: "db", Port: 3306, User: "root", Password: "pw", Database: "lunchmenu"}
	want := "root:pw@tcp(db:3306)/lunchmenu?parseTime=true"
	if got := db.DSN(); got != want {
		t.Errorf("DSN() = %q, want %q", got, want)
	}
}
