package indices

import (
	"errors"
	"strings"
	"testing"

	"github.com/custodia-labs/docsindex/internal/core/domain"
	"github.com/custodia-labs/docsindex/internal/core/ports/driven"
)

func TestNewRegistry(t *testing.T) {
	r := NewRegistry("/data")
	if r == nil {
		t.Fatal("NewRegistry returned nil")
	}
	if len(r.builders) != 0 {
		t.Errorf("expected empty builders, got %d", len(r.builders))
	}
}

func TestRegistry_Get_PassesDataDir(t *testing.T) {
	r := NewRegistry("/data")

	var got string
	r.Register(domain.TargetResumes, func(dataDir string) (driven.IndexDefinition, error) {
		got = dataDir
		return NewResumes(dataDir), nil
	})

	def, err := r.Get(domain.TargetResumes)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got != "/data" {
		t.Errorf("expected data dir /data, got %q", got)
	}
	if def.Name() != "resumes" {
		t.Errorf("expected name resumes, got %q", def.Name())
	}
}

func TestRegistry_Get_Unknown(t *testing.T) {
	r := NewDefaultRegistry("/data")

	_, err := r.Get("NetflixTitles")
	if err == nil {
		t.Fatal("expected error for unknown target")
	}
	if !errors.Is(err, domain.ErrUnsupportedType) {
		t.Errorf("expected ErrUnsupportedType, got %v", err)
	}
	if !strings.Contains(err.Error(), "asos_products, image_data, netflix_titles, resumes") {
		t.Errorf("expected available targets in error, got %q", err.Error())
	}
}

func TestRegistry_Get_BuilderError(t *testing.T) {
	r := NewRegistry("")
	want := errors.New("boom")
	r.Register(domain.TargetImageData, func(string) (driven.IndexDefinition, error) {
		return nil, want
	})

	if _, err := r.Get(domain.TargetImageData); !errors.Is(err, want) {
		t.Errorf("expected builder error, got %v", err)
	}
}

func TestRegisterDefaults(t *testing.T) {
	r := NewDefaultRegistry("/data")

	for _, target := range domain.AllIndexTargets() {
		if !r.Has(target) {
			t.Errorf("expected %s to be registered", target)
		}
		def, err := r.Get(target)
		if err != nil {
			t.Fatalf("Get(%s) failed: %v", target, err)
		}
		if def.Name() != string(target) {
			t.Errorf("expected name %s, got %s", target, def.Name())
		}
		if len(def.Properties()) == 0 {
			t.Errorf("expected properties for %s", target)
		}
	}

	targets := r.Targets()
	if len(targets) != 4 || targets[0] != domain.TargetAsosProducts {
		t.Errorf("unexpected targets %v", targets)
	}
}
