package contact

import "testing"

func TestValid(t *testing.T) {
	cases := []struct {
		channel string
		value   string
		want    bool
	}{
		{ChannelEmail, "ana@example.com", true},
		{ChannelEmail, "a@b.co", true},
		{ChannelEmail, "not-an-email", false},
		{ChannelEmail, "a b@example.com", false},
		{ChannelEmail, "", false},

		{ChannelPhone, "+62 812 3456 789", true},
		{ChannelPhone, "0812345678", true},
		{ChannelPhone, "(021) 555-0123", false},
		{ChannelPhone, "1(021) 555-0123", true},
		{ChannelPhone, "12345", false},
		{ChannelPhone, "call me", false},

		{ChannelDiscord, "ana#1234", true},
		{ChannelDiscord, "a#1234", false},
		{ChannelDiscord, "ana#12", false},
		{ChannelDiscord, "ana", false},

		{ChannelInstagram, "@ana.codes", true},
		{ChannelInstagram, "ana_codes", true},
		{ChannelInstagram, "has spaces", false},
		{ChannelTwitter, "@ana", true},
		{ChannelTwitter, "", false},

		{"carrier-pigeon", "coop 7", false},
	}
	for _, tc := range cases {
		if got := Valid(tc.channel, tc.value); got != tc.want {
			t.Fatalf("Valid(%q, %q) = %v, want %v", tc.channel, tc.value, got, tc.want)
		}
	}
}

func TestValid_TrimsValue(t *testing.T) {
	if !Valid(ChannelEmail, "  ana@example.com  ") {
		t.Fatalf("expected surrounding whitespace to be ignored")
	}
	if Valid(ChannelEmail, "   ") {
		t.Fatalf("blank value must not validate")
	}
}

func TestKnownChannel(t *testing.T) {
	for _, ch := range Channels {
		if !KnownChannel(ch) {
			t.Fatalf("expected %q to be known", ch)
		}
	}
	if KnownChannel("fax") {
		t.Fatalf("unexpected channel accepted")
	}
}

func TestClean(t *testing.T) {
	got := Clean(map[string]string{
		"email":   " ana@example.com ",
		"phone":   "   ",
		"discord": "",
	})
	if len(got) != 1 {
		t.Fatalf("expected 1 surviving channel, got %d", len(got))
	}
	if got["email"] != "ana@example.com" {
		t.Fatalf("expected trimmed email, got %q", got["email"])
	}
}
