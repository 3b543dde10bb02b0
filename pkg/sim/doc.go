// Package sim runs sticky-element scenarios against a synthetic page.
// A scenario yaml file describes the document, the registered elements,
// and a scroll script; the runner replays the script through the engine
// and records every fixed/unfixed transition as a trace. Frames can be
// rendered to PNG for visual inspection.
package sim
