package watermark

import "strings"

const outputTag = "with-watermark"

// OutputName derives the watermarked file name: "photo.jpg" becomes
// "photo-with-watermark.jpg".
func OutputName(name string) string {
	return EditedName(name, outputTag)
}

// EditedName inserts tag between the base name and the extension. The name is
// split at the first dot, so "a.b.c" keeps "b.c" as its extension. A name
// without a dot gets the tag appended.
func EditedName(name, tag string) string {
	base, ext, ok := strings.Cut(name, ".")
	if !ok {
		return base + "-" + tag
	}
	return base + "-" + tag + "." + ext
}

// PrefixedName puts prefix in front of the whole name: "bright-photo.jpg".
func PrefixedName(name, prefix string) string {
	return prefix + "-" + name
}
