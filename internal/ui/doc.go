// Package ui contains the Bubble Tea program that powers the shelf
// navigator. The Model focuses on message orchestration while dedicated
// helpers own navigation, input, rendering, and state updates.
//
// Message flow:
//   - Bubble Tea invokes Model.Update with incoming messages.
//   - Key presses are first offered to whichever modal surface is open
//     (record form, delete confirmation, quiz, or the filter prompt). All
//     other messages route through a typed handler registry so each tea.Msg
//     is handled by a focused function.
//   - Frame ticks advance the particle field and re-arm themselves through
//     the generation-tokened ticker; stale frames from a stopped run are
//     dropped rather than double-stepping the simulation.
//   - Navigation between shelf layers goes through shelf.Nav, which owns
//     the transition window. A warpDoneMsg carrying the hop's sequence
//     number closes the transition; rebinds invalidate in-flight messages.
//
// State ownership:
//   - Per-layer list state (cursor, filter, viewport) lives in
//     internal/ui/state.List.
//   - The record snapshot lives in internal/state and is kept current by
//     the dispatcher as library.Watcher events arrive.
//   - Store mutations run asynchronously via the internal/ui/command bus.
package ui
