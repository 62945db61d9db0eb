// Package criterion provides the stop conditions of the training loop.
//
// Training evaluates two ordered lists against a Snapshot: episode-stop
// criteria after every action, level-change criteria once per finished
// episode. Stateful criteria (the consecutive-episode streaks) count the
// calls they see, so each IsMet call stands for one observation; Reset
// clears them whenever training starts a new episode or level.
package criterion
