// Package placement implements CEFR placement-test scoring.
//
// A test attempt is scored against a bank of leveled questions (A1 to C1).
// Scoring produces a per-level accuracy breakdown and a single recommended
// level, determined by a strict contiguous gate (every level up to the
// candidate must clear 60%) followed by a statistical override that can
// promote candidates whose overall accuracy shows the gate underestimated
// them. ScoreAttempt is a pure function and never fails on malformed input;
// an unreadable answer is simply incorrect.
package placement
