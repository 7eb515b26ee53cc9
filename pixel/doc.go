// Package pixel implements the page addressed monochrome frame buffer used by SSD1306 OLED displays.
//
// The frame buffer is compatible with Go's native [color.Color] and [image.Image] / [draw.Image]
// interfaces, so anything that can draw on a Go image can draw on the display.
package pixel
