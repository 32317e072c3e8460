package errcode

import (
	"errors"
	"fmt"
	"testing"
)

func TestOf(t *testing.T) {
	if Of(nil) != OK {
		t.Fatal("nil should map to OK")
	}
	if Of(ChannelInUse) != ChannelInUse {
		t.Fatal("bare code should map to itself")
	}
	e := New(DuplicateDomain, "registry", "id 0")
	if Of(e) != DuplicateDomain {
		t.Fatalf("Of(*E) = %q", Of(e))
	}
	if got := Of(fmt.Errorf("load: %w", e)); got != DuplicateDomain {
		t.Fatalf("Of(wrapped *E) = %q", got)
	}
	if got := Of(fmt.Errorf("claim: %w", NoChannel)); got != NoChannel {
		t.Fatalf("Of(wrapped Code) = %q", got)
	}
	if Of(errors.New("x")) != Error {
		t.Fatal("foreign error should map to Error")
	}
}

func TestEWrapping(t *testing.T) {
	cause := errors.New("boom")
	e := &E{C: InvalidMetadata, Op: "gen", Msg: "bad yaml", Err: cause}
	if got := e.Error(); got != "gen: invalid_metadata: bad yaml" {
		t.Fatalf("Error() = %q", got)
	}
	wrapped := fmt.Errorf("load: %w", e)
	if !errors.Is(wrapped, InvalidMetadata) {
		t.Fatal("errors.Is should match the code through wrapping")
	}
	if !errors.Is(wrapped, cause) {
		t.Fatal("errors.Is should reach the cause")
	}
	if errors.Is(wrapped, ChannelInUse) {
		t.Fatal("unexpected match on a different code")
	}
}
