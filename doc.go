// Package watermark stamps text or image watermarks onto image files and
// applies simple pixel edits (brightness, contrast) before stamping.
//
// Everything runs in memory on the standard image types. Decoding covers
// JPEG, PNG, GIF, WebP, BMP and TIFF; JPEG EXIF orientation is applied on
// read. Output is always encoded at the highest quality the target format
// offers, and files are written atomically.
package watermark
