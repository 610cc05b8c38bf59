package menu

import (
	"context"
	"errors"
	"io"

	"github.com/rs/zerolog"

	"github.com/mesh-intelligence/stockroom/internal/console"
	"github.com/mesh-intelligence/stockroom/internal/inventory"
	"github.com/mesh-intelligence/stockroom/internal/session"
)

// handler runs one visit to a state and returns the state to enter next.
type handler func() (State, error)

// Machine drives the interactive workflow for one session. It is a single
// control loop; each handler blocks on console input.
type Machine struct {
	sess     *session.Session
	con      *console.Console
	store    *inventory.Store
	log      zerolog.Logger
	state    State
	handlers map[State]handler
	observe  func(from, to State)
}

// Option configures a Machine.
type Option func(*Machine)

// WithObserver registers fn to be called on every state change, including
// re-entering the same state.
func WithObserver(fn func(from, to State)) Option {
	return func(m *Machine) { m.observe = fn }
}

// New creates a Machine in MainMenu for sess.
func New(sess *session.Session, opts ...Option) *Machine {
	m := &Machine{
		sess:  sess,
		con:   sess.Console,
		store: sess.Store,
		log:   sess.Log.With().Str("component", "menu").Logger(),
		state: MainMenu,
	}
	m.handlers = map[State]handler{
		MainMenu:       m.mainMenu,
		ViewProducts:   m.viewProducts,
		AddProduct:     m.addProduct,
		UpdateProduct:  m.updateProduct,
		RemoveProduct:  m.removeProduct,
		SearchProduct:  m.searchProduct,
		DisplaySummary: m.displaySummary,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// State returns the current state.
func (m *Machine) State() State { return m.state }

// Run loops until ExitProgram is reached, then persists the store and
// returns. End of input is treated as choosing to exit. Run returns a
// non-nil error only for console failures other than end of input, or when
// ctx is canceled.
func (m *Machine) Run(ctx context.Context) error {
	for !m.state.Terminal() {
		if err := ctx.Err(); err != nil {
			return err
		}

		next, err := m.handlers[m.state]()
		if err != nil {
			if !errors.Is(err, io.EOF) {
				return err
			}
			m.log.Info().Stringer("state", m.state).Msg("input closed, exiting")
			next = ExitProgram
		}
		m.enter(next)
	}

	m.exitProgram()
	return nil
}

func (m *Machine) enter(next State) {
	from := m.state
	m.state = next
	m.log.Debug().Stringer("from", from).Stringer("to", next).Msg("state transition")
	if m.observe != nil {
		m.observe(from, next)
	}
}

// follow applies Transition for a menu answer and performs the
// invalid-option effect when needed.
func (m *Machine) follow(from State, input string) (State, error) {
	next, effect := Transition(from, input)
	if effect == EffectInvalidOption {
		return m.invalid()
	}
	return next, nil
}

// invalid reports an unrecognized option, waits for acknowledgment, and
// returns to the main menu.
func (m *Machine) invalid() (State, error) {
	m.con.Println("\nInvalid option - Returning to Main Menu...")
	if err := m.con.Pause(); err != nil {
		return MainMenu, err
	}
	return MainMenu, nil
}

// again shows the loop prompt offered after an operation completes and
// resolves the answer against from.
func (m *Machine) again(from State, repeatLabel string) (State, error) {
	m.con.Clear()
	m.con.Separator('-')
	m.con.Menu("[1] "+repeatLabel, "[2] Return to Main Menu", "[3] Exit Program")
	choice, err := m.con.Choice("Select an option: ")
	if err != nil {
		return from, err
	}
	return m.follow(from, choice)
}

func (m *Machine) exitProgram() {
	m.con.Println("\nSaving data...")
	if err := m.sess.Persist(); err != nil {
		m.con.Println("Failed to save data!")
	} else {
		m.con.Println("Data saved successfully!")
	}
	m.con.Println("Thank you for using Stockroom!")
	m.con.Println("Program closing...")
}
