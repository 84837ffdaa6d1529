package mdpmodel

import "errors"

// ErrDuplicateState indicates AddState was called twice for the same index.
var ErrDuplicateState = errors.New("mdpmodel: state already added")

// ErrUnknownState indicates a transition referenced a state index that was
// never added via AddState.
var ErrUnknownState = errors.New("mdpmodel: unknown state")

// ErrNoChoice indicates AddTransition was called before AddChoice for that
// state.
var ErrNoChoice = errors.New("mdpmodel: no open choice for state")

// ErrBadProbabilityMass indicates a choice's transition probabilities do not
// sum to 1 within tolerance.
var ErrBadProbabilityMass = errors.New("mdpmodel: choice probabilities do not sum to 1")
