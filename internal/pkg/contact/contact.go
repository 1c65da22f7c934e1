package contact

import (
	"regexp"
	"strings"
)

// Supported contact channels. The discord format is the legacy name#1234
// discriminator form the platform launched with.
const (
	ChannelEmail     = "email"
	ChannelPhone     = "phone"
	ChannelDiscord   = "discord"
	ChannelInstagram = "instagram"
	ChannelTwitter   = "twitter"
)

var Channels = []string{
	ChannelEmail,
	ChannelPhone,
	ChannelDiscord,
	ChannelInstagram,
	ChannelTwitter,
}

var (
	emailRe   = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phoneRe   = regexp.MustCompile(`^\+?[0-9][0-9 ()-]{5,18}$`)
	discordRe = regexp.MustCompile(`^.{2,32}#[0-9]{4}$`)
	handleRe  = regexp.MustCompile(`^@?[A-Za-z0-9._]{1,30}$`)
)

func KnownChannel(channel string) bool {
	switch channel {
	case ChannelEmail, ChannelPhone, ChannelDiscord, ChannelInstagram, ChannelTwitter:
		return true
	}
	return false
}

// Valid reports whether value is a plausible identifier for the channel.
// Empty values are not valid; callers treat empty as "channel unset".
func Valid(channel, value string) bool {
	value = strings.TrimSpace(value)
	if value == "" {
		return false
	}
	switch channel {
	case ChannelEmail:
		return emailRe.MatchString(value)
	case ChannelPhone:
		return phoneRe.MatchString(value)
	case ChannelDiscord:
		return discordRe.MatchString(value)
	case ChannelInstagram, ChannelTwitter:
		return handleRe.MatchString(value)
	}
	return false
}

// Clean trims values and drops unset channels.
func Clean(methods map[string]string) map[string]string {
	out := make(map[string]string, len(methods))
	for ch, v := range methods {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		out[ch] = v
	}
	return out
}
