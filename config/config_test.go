package config

import "testing"

func TestGetDefaults(t *testing.T) {
	t.Setenv("GO_ENV", "test")
	t.Setenv("PORT", "")
	t.Setenv("DB_HOST", "")
	t.Setenv("DB_NAME", "")
	t.Setenv("JWT_SECRET", "")
	t.Setenv("JWT_EXPIRE_DAYS", "")
	t.Setenv("ALLOWED_ORIGINS", "")

	env, err := Get()
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}

	if env.PORT != 5010 {
		t.Errorf("PORT = %d, want 5010", env.PORT)
	}
	if env.DB_HOST != "localhost" || env.DB_PORT != "5432" {
		t.Errorf("DB defaults = %s:%s", env.DB_HOST, env.DB_PORT)
	}
	if env.DB_NAME != "resep_DB" {
		t.Errorf("DB_NAME = %s, want resep_DB", env.DB_NAME)
	}
	if env.JWT_SECRET != DevJWTSecret {
		t.Error("JWT_SECRET did not fall back to the development secret")
	}
	if env.JWT_EXPIRE_DAYS != 7 {
		t.Errorf("JWT_EXPIRE_DAYS = %d, want 7", env.JWT_EXPIRE_DAYS)
	}
	if env.ALLOWED_ORIGINS != "http://localhost:5173" {
		t.Errorf("ALLOWED_ORIGINS = %s", env.ALLOWED_ORIGINS)
	}
}

func TestGetProductionRequiresSecret(t *testing.T) {
	t.Setenv("GO_ENV", "production")
	t.Setenv("JWT_SECRET", "")

	if _, err := Get(); err == nil {
		t.Error("Get succeeded in production without JWT_SECRET")
	}
}

func TestGetExplicitValues(t *testing.T) {
	t.Setenv("GO_ENV", "test")
	t.Setenv("PORT", "9000")
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("JWT_EXPIRE_DAYS", "14")

	env, err := Get()
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}

	if env.PORT != 9000 {
		t.Errorf("PORT = %d, want 9000", env.PORT)
	}
	if env.JWT_SECRET != "s3cret" {
		t.Errorf("JWT_SECRET = %s", env.JWT_SECRET)
	}
	if env.JWT_EXPIRE_DAYS != 14 {
		t.Errorf("JWT_EXPIRE_DAYS = %d, want 14", env.JWT_EXPIRE_DAYS)
	}
}
