package pkg

import (
	"regexp"
	"slices"
	"strings"
	"testing"
)

func TestName(t *testing.T) {
	expected := "anubhav"
	if Name != expected {
		t.Errorf("Expected Name to be %q, got %q", expected, Name)
	}
}

func TestDescription(t *testing.T) {
	expected := "Anubhav language interpreter"
	if Description != expected {
		t.Errorf("Expected Description to be %q, got %q", expected, Description)
	}
}

func TestVersion(t *testing.T) {
	// Version is embedded from the VERSION file, so it should not be empty
	// and should look like a semantic version.
	version := strings.TrimSpace(Version)
	if version == "" {
		t.Fatal("Expected Version to be non-empty")
	}

	semver := regexp.MustCompile(`^\d+\.\d+\.\d+`)
	if !semver.MatchString(version) {
		t.Errorf("Expected Version to be semantic, got %q", version)
	}
}

func TestAuthor(t *testing.T) {
	if len(Author) == 0 {
		t.Error("Expected Author to have at least one entry")
	}

	// Test if a known author is present
	if len(Author) > 0 {
		expectedName := "anubhavg-icpl"
		expectedEmail := "anubhavg@infopercept.com"

		if !slices.ContainsFunc(Author, func(a AuthorInfo) bool {
			return a.Name == expectedName && a.Email == expectedEmail
		}) {
			t.Errorf("Expected Author to contain %q, %q", expectedName, expectedEmail)
		}
	}
}

func TestAuthorStruct(t *testing.T) {
	// Test that Author slice has the expected structure
	for i, author := range Author {
		if author.Name == "" && author.Email == "" {
			t.Errorf("Author[%d] must define at least Name or Email", i)
		}
	}
}
