// Package betting reconstructs the betting state of a single hand from its
// event log.
//
// The engine is a pure reducer: every call folds the complete log from the
// initial state (blinds posted, nothing else) and returns the derived State.
// There is no incremental variant and no state is kept between calls, so the
// result depends only on the events passed in.
//
// # Basic Usage
//
//	log := hand.NewLog(
//	    hand.ActionEvent{Position: hand.BTN, Action: hand.Raise, Size: "3"},
//	    hand.ActionEvent{Position: hand.BB, Action: hand.Call},
//	)
//	st := betting.Evaluate(log.Events())
//	fmt.Println(st.Pot) // 6.5
//
// # Accounting
//
// Preflop every action states the seat's total commitment for the hand: a
// call moves the seat up to the last raise, a raise moves it up to the raise
// size. Postflop, amounts are tracked per street: calls match the street's
// bet and raises set a new street total, with the difference added to the
// seat's commitment and the pot.
//
// When a board event starts a new street, every seat that is still in the
// hand but took no action during the ending street is marked folded.
//
// # Malformed Input
//
// Evaluation never fails. Actions by folded or unknown seats, raises without a
// positive size and board events that would move the hand backwards are
// skipped, and the remaining events are applied as usual. The pot always
// equals the sum of the seats' commitments.
package betting
