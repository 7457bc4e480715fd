/*
Package tui implements the interactive flag picker.

# Architecture

The TUI follows the Bubble Tea framework's Model-Update-View pattern:
  - Model: Maintains all view state
  - Update: Processes messages and returns commands
  - View: Renders the current state to the terminal

# Key Components

  - model.go: Model struct, modes and exit actions
  - keys.go: Keyboard input handling, routed by mode
  - render.go: View rendering (flag list, preview pane, status bar, help overlay)
  - actions.go: Language toggle, search, clipboard, scroll bookkeeping
  - init.go: Construction and the blocking Run entry point

# State Ownership

All flag and selection state is owned by selection.Model and mutated only
through its operations; the TUI model carries view concerns (mode, scroll
offset, search matches, transient messages) and nothing else. The caller
gets the selection model back after Run and owns whatever happens next:
executing the composed command, printing it, or discarding it.
*/
package tui
