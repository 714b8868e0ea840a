package services

// DefaultScrollSpeed multiplies the wheel delta before scrolling.
const DefaultScrollSpeed = 1.5

// ScrollBehavior is the scroll-behavior used for redirected wheel input.
const ScrollBehavior = "smooth"

// ScrollRedirect turns wheel input on the main region into a smooth scroll.
// static/js/scroll.js applies the same formula in the browser.
type ScrollRedirect struct {
	Speed float64
}

// NewScrollRedirect returns a redirect with the given speed, or DefaultScrollSpeed if speed <= 0.
func NewScrollRedirect(speed float64) ScrollRedirect {
	if speed <= 0 {
		speed = DefaultScrollSpeed
	}
	return ScrollRedirect{Speed: speed}
}

// Target computes the new scroll offset for a wheel delta.
func (s ScrollRedirect) Target(scrollTop, deltaY float64) float64 {
	return scrollTop + deltaY*s.Speed
}
