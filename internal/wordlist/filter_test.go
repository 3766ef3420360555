package wordlist

import "testing"

func TestFilterEnglishASCII(t *testing.T) {
	filter := FilterForLang("en")
	if !filter("hello") {
		t.Fatalf("expected hello to pass english filter")
	}
	for _, word := range []string{"résumé", "naïve", "don’t", "co-op"} {
		if filter(word) {
			t.Fatalf("expected %q to be rejected", word)
		}
	}
}

func TestFilterLettersAllowsDiacritics(t *testing.T) {
	filter := FilterForLang("pl")
	for _, word := range []string{"źdźbło", "żółw", "kot", "łódź"} {
		if !filter(word) {
			t.Fatalf("expected %q to pass", word)
		}
	}
	for _, word := range []string{"", "co-op", "a b", "k2", "don’t"} {
		if filter(word) {
			t.Fatalf("expected %q to be rejected", word)
		}
	}
}
