// Package agent implements the tabular Q-learning agent.
//
// The agent perceives a maze through maze.State, keeps one Q-value per
// (state, action) in a QTable and delegates exploration to a Policy. Every
// DoAction applies the Bellman update
//
//	Q(s,a) ← Q(s,a) + α·(r + γ·max Q(s',·) − Q(s,a))
//
// with r the reward of the node entered.
//
// Actions are always ordered Up, Right, Down, Left; policies rely on that
// order for reproducible tie-breaks.
package agent
