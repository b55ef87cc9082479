package userinfo

import "testing"

func TestResolveLookupSuccess(t *testing.T) {
	id := Resolve("alice", func(login string) (int, bool) {
		if login != "alice" {
			t.Fatalf("unexpected login: %s", login)
		}
		return 501, true
	})
	if id.UID != 501 {
		t.Fatalf("expected uid 501, got %d", id.UID)
	}
	if id.Login != "alice" {
		t.Fatalf("expected login alice, got %s", id.Login)
	}
}

func TestResolveLookupFailureFallsBack(t *testing.T) {
	id := Resolve("ghost", func(string) (int, bool) { return 0, false })
	if id.UID != FallbackUID {
		t.Fatalf("expected fallback uid %d, got %d", FallbackUID, id.UID)
	}
}

func TestResolveEmptyLogin(t *testing.T) {
	id := Resolve("", nil)
	if id.UID != FallbackUID {
		t.Fatalf("expected fallback uid %d, got %d", FallbackUID, id.UID)
	}
	if id.Login != "" {
		t.Fatalf("expected empty login, got %s", id.Login)
	}
}

func TestSystemLookupEmptyLogin(t *testing.T) {
	if _, ok := SystemLookup(""); ok {
		t.Fatal("expected empty login lookup to fail")
	}
}
