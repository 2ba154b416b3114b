package mailer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aehsummit/site/pkg/mailer"
)

func TestRecipient(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Summit <onboarding@resend.dev>", mailer.Recipient("Summit", "onboarding@resend.dev"))
	assert.Equal(t, "a@b.c", mailer.Recipient("", "a@b.c"))
}

func TestSplitAddresses(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{"a@b.c", "d@e.f"}, mailer.SplitAddresses(" a@b.c, ,d@e.f,"))
	assert.Nil(t, mailer.SplitAddresses(""))
}

func TestSimpleTags(t *testing.T) {
	t.Parallel()

	tags := mailer.SimpleTags("contact", "summit")
	assert.Len(t, tags, 2)
	assert.Equal(t, struct{}{}, tags["contact"])
}

func TestEmail_Validate(t *testing.T) {
	t.Parallel()

	ok := &mailer.Email{To: []string{"a@b.c"}, Subject: "s", HTML: "<p>x</p>"}
	assert.NoError(t, ok.Validate())

	assert.ErrorIs(t, (&mailer.Email{Subject: "s", HTML: "x"}).Validate(), mailer.ErrNoRecipient)
	assert.ErrorIs(t, (&mailer.Email{To: []string{"a"}, Subject: "  ", HTML: "x"}).Validate(), mailer.ErrNoSubject)
	assert.ErrorIs(t, (&mailer.Email{To: []string{"a"}, Subject: "s"}).Validate(), mailer.ErrNoContent)
}

func TestTags(t *testing.T) {
	t.Parallel()

	tags := mailer.Tags{"source": "contact-form", "b": struct{}{}, "n": 3}
	assert.Equal(t, []string{"b", "n", "source"}, tags.Names())
	assert.Equal(t, "true", mailer.TagValue(tags["b"]))
	assert.Equal(t, "3", mailer.TagValue(tags["n"]))
	assert.Equal(t, "contact-form", mailer.TagValue(tags["source"]))
	assert.Equal(t, "1.5", mailer.TagValue(1.5))
}
