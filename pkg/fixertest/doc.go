// Package fixertest provides isolated engine testing without a real
// document. FakeSurface is an in-memory stand-in for the dom.Surface
// contract, FakeClock drives throttle and debounce windows
// deterministically, and Tester wires both to a Fixer with the
// scroll/resize/settle helpers the engine tests are written against.
package fixertest
