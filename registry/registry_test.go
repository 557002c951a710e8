package registry

import (
	"strings"
	"sync"
	"testing"
)

func TestRegisterAndLookupModel(t *testing.T) {
	reg := New()

	if _, ok := reg.LookupModel("User", ObjectType); ok {
		t.Error("Expected no registration in a fresh registry")
	}

	reg.RegisterModel("User", ObjectType, "user-object")
	got, ok := reg.LookupModel("User", ObjectType)
	if !ok || got != "user-object" {
		t.Errorf("LookupModel = (%v, %v), expected (user-object, true)", got, ok)
	}

	// Other kinds of the same model stay unregistered.
	if _, ok := reg.LookupModel("User", FilterInputObjectType); ok {
		t.Error("Expected no filter input registration")
	}

	// Re-registering replaces.
	reg.RegisterModel("User", ObjectType, "replacement")
	got, _ = reg.LookupModel("User", ObjectType)
	if got != "replacement" {
		t.Errorf("Expected replacement after re-registration, got %v", got)
	}
}

func TestConvertedModelError(t *testing.T) {
	reg := New()
	_, err := reg.ConvertedModel("Order", PaginatedObjectType)
	if err == nil {
		t.Fatal("Expected error for missing conversion, got nil")
	}
	if !strings.Contains(err.Error(), "Order") || !strings.Contains(err.Error(), string(PaginatedObjectType)) {
		t.Errorf("Error should name the model and kind, got: %v", err)
	}
}

func TestModelKindsSnapshot(t *testing.T) {
	reg := New()
	reg.RegisterModel("User", ObjectType, 1)
	reg.RegisterModel("User", InputObjectType, 2)

	kinds := reg.ModelKinds("User")
	if len(kinds) != 2 {
		t.Fatalf("Expected 2 kinds, got %d", len(kinds))
	}

	// Mutating the snapshot must not affect the registry.
	delete(kinds, ObjectType)
	if _, ok := reg.LookupModel("User", ObjectType); !ok {
		t.Error("Snapshot mutation leaked into registry")
	}
}

func TestRegisterAndLookupField(t *testing.T) {
	reg := New()
	key := FieldKey("User", "email")
	if key != "User.email" {
		t.Errorf("FieldKey = %q, expected %q", key, "User.email")
	}

	reg.RegisterField(key, FieldOutput, "string-type")
	got, ok := reg.LookupField(key, FieldOutput)
	if !ok || got != "string-type" {
		t.Errorf("LookupField = (%v, %v), expected (string-type, true)", got, ok)
	}
	if _, ok := reg.LookupField(key, FieldInputForSearch); ok {
		t.Error("Expected no search input registration for field")
	}
}

func TestGlobalAndNamedRegistries(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	if Global() != Global() {
		t.Error("Global must return the same registry")
	}
	if Named("") != Global() {
		t.Error("Named(\"\") must return the default registry")
	}
	if Named("a") != Named("a") {
		t.Error("Named must memoize per name")
	}
	if Named("a") == Named("b") {
		t.Error("Different names must get different registries")
	}

	Named("a").RegisterModel("User", ObjectType, 1)
	Reset()
	if _, ok := Named("a").LookupModel("User", ObjectType); ok {
		t.Error("Reset must discard named registries")
	}
}

func TestConcurrentAccess(t *testing.T) {
	reg := New()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				reg.RegisterModel("User", ObjectType, n)
				reg.LookupModel("User", ObjectType)
				reg.ModelKeys()
			}
		}(i)
	}
	wg.Wait()
}
