package linkedin

import (
	"regexp"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func TestHashValue(t *testing.T) {
	if got := HashValue("test@example.com"); got != "973dfe463ec85785f5f95af5ba3906eedb2d931c24e69824a89ea65dba4e813b" {
		t.Errorf("unexpected digest %s", got)
	}
	if got := HashValue(""); got != "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855" {
		t.Errorf("unexpected digest of empty string %s", got)
	}
	// no trimming or case folding
	if HashValue(" Test@Example.com") == HashValue("test@example.com") {
		t.Error("expected raw input to be hashed without normalization")
	}
}

func TestProperty_HashValueShape(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	hexDigest := regexp.MustCompile(`^[0-9a-f]{64}$`)

	properties.Property("digest is 64 lowercase hex characters", prop.ForAll(
		func(input string) bool {
			return hexDigest.MatchString(HashValue(input))
		},
		gen.AnyString(),
	))

	properties.Property("digest is stable across calls", prop.ForAll(
		func(input string) bool {
			return HashValue(input) == HashValue(input)
		},
		gen.AnyString(),
	))

	properties.TestingRun(t)
}
