// Package domain contains the core entities of a fitness competition (users,
// events, workouts, competitors and exercises) together with the rules that
// derive state on them: credential handling, event idents, competitor
// categories and result accumulation. It has no knowledge of storage or
// transport.
package domain
