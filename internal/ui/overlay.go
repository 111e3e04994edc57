package ui

import (
	_ "embed"
)

//go:embed overlay.css
var overlayCSS string

// DefaultStylesheet returns the built-in overlay styles.
func DefaultStylesheet() *Stylesheet {
	sheet, err := ParseCSS(overlayCSS)
	if err != nil {
		panic("ui: embedded overlay.css: " + err.Error())
	}
	return sheet
}

// OverlayState says which overlay region is visible. At most one of the three is set.
// Pass it from the viewer; ui does not depend on the viewer.
type OverlayState struct {
	Indicator bool
	Caption   bool
	Error     bool
	ErrorText string
}

// Overlay is the 2D layer over the 3D canvas: a centered loading indicator (spinner and text),
// a bottom-anchored caption, and an error line shown when the asset failed.
// It owns its nodes and toggles them in Apply.
type Overlay struct {
	loading     *Node
	spinner     *Node
	loadingText *Node
	caption     *Node
	captionText *Node
	errorText   *Node
}

// NewOverlay creates the overlay nodes styled by .loading, .spinner, .loading-text, .caption,
// .caption-text and .error.
func NewOverlay(loadingText, caption string) *Overlay {
	return &Overlay{
		loading:     NewNode("panel", "loading", "", ""),
		spinner:     NewNode("spinner", "spinner", "", ""),
		loadingText: NewNode("label", "loading-text", "", loadingText),
		caption:     NewNode("panel", "caption", "", ""),
		captionText: NewNode("label", "caption-text", "", caption),
		errorText:   NewNode("label", "error", "", ""),
	}
}

// Nodes returns every overlay node in draw order. Register them once with Engine.SetNodes.
func (o *Overlay) Nodes() []*Node {
	return []*Node{o.loading, o.spinner, o.loadingText, o.caption, o.captionText, o.errorText}
}

// Apply shows the nodes of the visible region and hides the rest. Call every frame.
func (o *Overlay) Apply(st OverlayState) {
	o.loading.Hidden = !st.Indicator
	o.spinner.Hidden = !st.Indicator
	o.loadingText.Hidden = !st.Indicator
	o.caption.Hidden = !st.Caption
	o.captionText.Hidden = !st.Caption
	o.errorText.Hidden = !st.Error
	o.errorText.Text = st.ErrorText
}
