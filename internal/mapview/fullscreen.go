// SPDX-License-Identifier: MIT
package mapview

// Capabilities lists which fullscreen APIs the browser exposes on the body
// element and the document.
type Capabilities struct {
	Standard bool `json:"standard"`
	Webkit   bool `json:"webkit"`
	MS       bool `json:"ms"`
}

// FullscreenAction is the method the page should call on document.body
// (request) or document (exit). An empty Method means nothing to do.
type FullscreenAction struct {
	Method string `json:"method,omitempty"`
	Enter  bool   `json:"enter"`
}

var (
	requestMethods = [3]string{"requestFullscreen", "webkitRequestFullscreen", "msRequestFullscreen"}
	exitMethods    = [3]string{"exitFullscreen", "webkitExitFullscreen", "msExitFullscreen"}
)

// ToggleFullscreen picks the first supported API, standard before webkit
// before ms. When the page is not fullscreen it requests, otherwise it exits.
func ToggleFullscreen(isFullscreen bool, caps Capabilities) FullscreenAction {
	methods := requestMethods
	if isFullscreen {
		methods = exitMethods
	}

	supported := [3]bool{caps.Standard, caps.Webkit, caps.MS}
	for i, ok := range supported {
		if ok {
			return FullscreenAction{Method: methods[i], Enter: !isFullscreen}
		}
	}
	return FullscreenAction{Enter: !isFullscreen}
}
