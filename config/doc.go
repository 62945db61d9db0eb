// Package config loads a training run from a .env file and LVLMAZE_*
// environment variables.
//
// Values come from the file at the given path (a missing file only yields a
// warning) and are overridden by the process environment. Every key is
// optional; absent keys take the defaults listed in Keys. Unknown LVLMAZE_*
// keys are rejected.
//
// Policy, criteria and operators are written in their registry syntax:
//
//	LVLMAZE_POLICY=vdbe:epsilon=0.5,sigma=3
//	LVLMAZE_EPISODE_STOP=end-reached;max-actions:500
//	LVLMAZE_LEVEL_CHANGE=consecutive-optimal:3;episodes:300
//	LVLMAZE_OPERATORS=resize:cost=2;new-path;dead-end:prefer-route=0.5
//
// Lists are separated by ';' since specs may contain commas.
package config
