// Package state holds the MindMate client state machines.
//
// Each controller owns one state value and changes it only through a pure
// reducer (ReduceAuth, ReduceApp) applied to a small action value. After
// the reducer runs, the controller performs its side effects (Persisted
// Store writes) and then notifies subscribers with a copy of the new
// state.
//
// AuthController manages the signed-in user and talks to the auth
// endpoint. AppController manages moods, habits and chat history; it
// subscribes to an AuthController so that data is loaded when a user
// signs in, reset when they sign out, and saved after every mutation.
package state
