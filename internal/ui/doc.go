// Package ui is the terminal front end of the portfolio, built on Bubble Tea.
//
// Core pieces:
//   - AppModel: root model; owns the gallery controller and routes input
//   - Section / FocusManager: the page tabs and their rotation
//   - TileList: selectable project and certification tiles
//   - PreviewModal / EmailPopup: overlays rendered from controller state
//   - KeyHandler: single keys plus SPC leader sequences
//   - Runtime: runs controller timers and dispatches on the Bubble Tea loop
package ui
