package contact

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEncodeComponent(t *testing.T) {
	tests := map[string]string{
		"abcXYZ019":       "abcXYZ019",
		"-_.!~*'()":       "-_.!~*'()",
		"a b":             "a%20b",
		"a+b&c=d":         "a%2Bb%26c%3Dd",
		"line\nbreak":     "line%0Abreak",
		"you@example.com": "you%40example.com",
		"é":               "%C3%A9",
	}
	for in, want := range tests {
		assert.Equal(t, want, EncodeComponent(in), "input %q", in)
	}
}

func TestMailtoURL(t *testing.T) {
	m := Message{Name: "Ada Lovelace", Email: "ada@example.com", Body: "Automate my lab?"}

	got := MailtoURL("owner@example.com", m)
	assert.Equal(t,
		"mailto:owner@example.com"+
			"?subject=Portfolio%20Inquiry%20from%20Ada%20Lovelace"+
			"&body=Name%3A%20Ada%20Lovelace%0AEmail%3A%20ada%40example.com%0A%0AMessage%3A%0AAutomate%20my%20lab%3F",
		got)
}

func TestValidate(t *testing.T) {
	assert.NoError(t, Message{Name: "a", Email: "b", Body: "c"}.Validate())
	assert.ErrorIs(t, Message{Name: "a", Email: "b"}.Validate(), ErrIncomplete)
	assert.ErrorIs(t, Message{Name: " ", Email: "b", Body: "c"}.Validate(), ErrIncomplete)
}

func TestOpenerFunc(t *testing.T) {
	var opened []string
	var o Opener = OpenerFunc(func(url string) error {
		opened = append(opened, url)
		return nil
	})

	assert.NoError(t, o.Open("mailto:x"))
	assert.Equal(t, []string{"mailto:x"}, opened)
}
