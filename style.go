package gui

import (
	"fmt"
	"strings"
)

// Spacing scale for consistent layout.
const (
	SpaceNone float32 = 0
	SpaceXS   float32 = 2
	SpaceSM   float32 = 4 // Default item spacing
	SpaceMD   float32 = 8 // Default padding
	SpaceLG   float32 = 12
	SpaceXL   float32 = 16
	Space2XL  float32 = 24
	Space3XL  float32 = 32
	Space4XL  float32 = 48
)

// Style defines the visual appearance of UI elements.
type Style struct {
	ClearColor uint32 // Behind everything; hosts clear the framebuffer with it

	TextColor          uint32
	TextDisabledColor  uint32
	TextHighlightColor uint32

	// Windows
	WindowBgColor     uint32
	WindowBorderColor uint32
	TitleBgColor      uint32
	TitleTextColor    uint32

	ButtonColor         uint32
	ButtonHoveredColor  uint32
	ButtonActiveColor   uint32
	ButtonDisabledColor uint32

	SelectedBgColor uint32
	HoveredBgColor  uint32

	InputBgColor        uint32
	InputFocusedBgColor uint32
	InputBorderColor    uint32

	SeparatorColor uint32
	StripeColor    uint32 // Background of odd grid rows

	SliderTrackColor  uint32
	SliderFillColor   uint32
	SliderGrabColor   uint32
	SliderGrabHovered uint32
	SliderGrabActive  uint32

	PopupBgColor   uint32
	TooltipBgColor uint32

	// Sizing
	FontScale      float32
	ItemSpacing    float32
	WindowPadding  float32
	ButtonPadding  float32
	InputPadding   float32
	BorderSize     float32
	ResizeGripSize float32
}

// DefaultStyle returns the default dark-gray style.
func DefaultStyle() Style {
	return Style{
		ClearColor: RGBA(31, 31, 36, 255),

		TextColor:          RGBA(220, 220, 220, 255),
		TextDisabledColor:  ColorGray,
		TextHighlightColor: ColorYellow,

		WindowBgColor:     RGBA(27, 27, 27, 245),
		WindowBorderColor: RGBA(60, 60, 60, 255),
		TitleBgColor:      RGBA(40, 40, 45, 255),
		TitleTextColor:    ColorWhite,

		ButtonColor:         RGBA(60, 60, 60, 255),
		ButtonHoveredColor:  RGBA(80, 80, 80, 255),
		ButtonActiveColor:   RGBA(100, 100, 100, 255),
		ButtonDisabledColor: RGBA(40, 40, 40, 255),

		SelectedBgColor: RGBA(0, 92, 128, 255),
		HoveredBgColor:  RGBA(60, 60, 60, 255),

		InputBgColor:        RGBA(10, 10, 10, 255),
		InputFocusedBgColor: RGBA(30, 30, 40, 255),
		InputBorderColor:    RGBA(90, 90, 90, 255),

		SeparatorColor: RGBA(70, 70, 70, 255),
		StripeColor:    RGBA(255, 255, 255, 8),

		SliderTrackColor:  RGBA(45, 45, 45, 255),
		SliderFillColor:   RGBA(0, 92, 128, 255),
		SliderGrabColor:   RGBA(140, 140, 140, 255),
		SliderGrabHovered: RGBA(170, 170, 170, 255),
		SliderGrabActive:  RGBA(200, 200, 200, 255),

		PopupBgColor:   RGBA(20, 20, 20, 250),
		TooltipBgColor: RGBA(15, 15, 15, 240),

		FontScale:      1.0,
		ItemSpacing:    SpaceSM,
		WindowPadding:  SpaceMD,
		ButtonPadding:  SpaceSM,
		InputPadding:   SpaceXS,
		BorderSize:     1,
		ResizeGripSize: 6,
	}
}

// GTAStyle returns a dark theme with cyan and yellow accents.
func GTAStyle() Style {
	s := DefaultStyle()
	s.ClearColor = RGBA(10, 14, 20, 255)
	s.TextColor = ColorWhite
	s.TextHighlightColor = RGBA(255, 200, 0, 255)
	s.WindowBgColor = RGBA(0, 0, 0, 220)
	s.WindowBorderColor = RGBA(100, 100, 100, 255)
	s.TitleBgColor = RGBA(0, 60, 90, 255)
	s.TitleTextColor = RGBA(255, 200, 0, 255)
	s.ButtonColor = RGBA(40, 40, 40, 255)
	s.ButtonHoveredColor = RGBA(60, 80, 100, 255)
	s.ButtonActiveColor = RGBA(0, 150, 200, 255)
	s.ButtonDisabledColor = RGBA(30, 30, 30, 150)
	s.SelectedBgColor = RGBA(0, 120, 180, 255)
	s.InputBgColor = RGBA(20, 20, 20, 255)
	s.InputBorderColor = RGBA(0, 150, 200, 255)
	s.SeparatorColor = RGBA(0, 150, 200, 128)
	s.StripeColor = RGBA(20, 30, 40, 255)
	s.SliderFillColor = RGBA(0, 120, 180, 255)
	s.SliderGrabColor = RGBA(0, 150, 200, 255)
	s.SliderGrabHovered = RGBA(0, 180, 230, 255)
	s.SliderGrabActive = RGBA(0, 200, 255, 255)
	s.ItemSpacing = 6
	s.WindowPadding = SpaceLG
	s.ButtonPadding = 6
	return s
}

// DarkStyle returns a dark theme with a royal blue accent.
func DarkStyle() Style {
	s := DefaultStyle()
	s.WindowBgColor = RGBA(25, 25, 25, 240)
	s.TitleBgColor = RGBA(35, 35, 40, 255)
	s.ButtonColor = RGBA(45, 45, 45, 255)
	s.ButtonHoveredColor = RGBA(65, 65, 65, 255)
	s.SelectedBgColor = RGBA(65, 105, 225, 255)
	s.SliderFillColor = RGBA(65, 105, 225, 255)
	return s
}

// LightStyle returns a light theme.
func LightStyle() Style {
	s := DefaultStyle()
	s.ClearColor = RGBA(200, 200, 205, 255)
	s.TextColor = RGBA(20, 20, 20, 255)
	s.TextDisabledColor = RGBA(150, 150, 150, 255)
	s.TextHighlightColor = RGBA(0, 100, 200, 255)
	s.WindowBgColor = RGBA(245, 245, 245, 250)
	s.WindowBorderColor = RGBA(200, 200, 200, 255)
	s.TitleBgColor = RGBA(220, 220, 225, 255)
	s.TitleTextColor = RGBA(40, 40, 40, 255)
	s.ButtonColor = RGBA(220, 220, 220, 255)
	s.ButtonHoveredColor = RGBA(200, 200, 200, 255)
	s.ButtonActiveColor = RGBA(180, 180, 180, 255)
	s.ButtonDisabledColor = RGBA(235, 235, 235, 255)
	s.SelectedBgColor = RGBA(0, 120, 215, 255)
	s.HoveredBgColor = RGBA(230, 230, 230, 255)
	s.InputBgColor = ColorWhite
	s.InputFocusedBgColor = ColorWhite
	s.InputBorderColor = RGBA(150, 150, 150, 255)
	s.SeparatorColor = RGBA(200, 200, 200, 255)
	s.StripeColor = RGBA(0, 0, 0, 10)
	s.SliderTrackColor = RGBA(220, 220, 220, 255)
	s.SliderFillColor = RGBA(0, 120, 215, 255)
	s.SliderGrabColor = RGBA(180, 180, 180, 255)
	s.SliderGrabHovered = RGBA(160, 160, 160, 255)
	s.SliderGrabActive = RGBA(140, 140, 140, 255)
	s.PopupBgColor = ColorWhite
	s.TooltipBgColor = RGBA(250, 250, 230, 250)
	return s
}

// StyleNames lists the names accepted by StyleByName.
var StyleNames = []string{"default", "dark", "light", "gta"}

// StyleByName returns the built-in style with the given name.
func StyleByName(name string) (Style, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "default":
		return DefaultStyle(), nil
	case "dark":
		return DarkStyle(), nil
	case "light":
		return LightStyle(), nil
	case "gta":
		return GTAStyle(), nil
	}
	return Style{}, fmt.Errorf("unknown style %q (want one of %s)", name, strings.Join(StyleNames, ", "))
}
