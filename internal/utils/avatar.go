package utils

import (
	"hash/fnv"
	"net/url"
)

// paletteEntry pairs a background with a readable foreground; light
// backgrounds get dark text.
type paletteEntry struct {
	Background string
	Color      string
}

var avatarPalette = []paletteEntry{
	{"d4a373", "fff"},
	{"faedcd", "0f1115"},
	{"6b705c", "fff"},
	{"dda15e", "fff"},
	{"8b5cf6", "fff"},
}

// AvatarURL derives a deterministic avatar image URL for a barista name using
// the ui-avatars templating scheme. When background is empty a palette entry
// is picked by hashing the name, so the same name always gets the same look.
func AvatarURL(baseURL, name, background string) string {
	entry := pickPaletteEntry(name)
	if background != "" {
		entry = paletteEntry{Background: background, Color: "fff"}
		for _, p := range avatarPalette {
			if p.Background == background {
				entry = p
				break
			}
		}
	}

	params := url.Values{}
	params.Set("name", name)
	params.Set("background", entry.Background)
	params.Set("color", entry.Color)

	return baseURL + "?" + params.Encode()
}

func pickPaletteEntry(name string) paletteEntry {
	h := fnv.New32a()
	_, _ = h.Write([]byte(name))
	return avatarPalette[h.Sum32()%uint32(len(avatarPalette))]
}
