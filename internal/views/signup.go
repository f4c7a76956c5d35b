package views

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strconv"
	"strings"

	"github.com/2beens/dawarpower/internal/coachapi"
	"github.com/2beens/dawarpower/internal/profile"

	log "github.com/sirupsen/logrus"
	"go.uber.org/multierr"
)

const (
	MsgSignedUp     = "Welcome aboard!"
	MsgSignupFailed = "Could not create your account. Please try again."

	// LandingPath is where a new account continues; the user id is appended
	// when the api returns one.
	LandingPath = "/signed-in-landing-page"

	minPasswordLength = 8

	slotSignup = "signup"
)

type SignupForm struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (f SignupForm) validate() error {
	var err error
	if len(strings.TrimSpace(f.Name)) < 2 {
		err = multierr.Append(err, errors.New("name: at least 2 characters required"))
	}
	if _, parseErr := mail.ParseAddress(f.Email); parseErr != nil {
		err = multierr.Append(err, fmt.Errorf("email: invalid address %q", f.Email))
	}
	if len(f.Password) < minPasswordLength {
		err = multierr.Append(err, fmt.Errorf("password: at least %d characters required", minPasswordLength))
	}
	return err
}

type SignupState struct {
	User    *coachapi.User `json:"user"`
	Message string         `json:"message"`
	// Next is the route to continue to, empty until the account exists.
	Next string `json:"next"`
}

// Signup creates an account through the api. The password is sent once and
// never echoed back.
type Signup struct {
	*lifecycle
	api userAPI
}

func NewSignup(store *profile.Store, api userAPI) *Signup {
	return &Signup{
		lifecycle: newLifecycle(store),
		api:       api,
	}
}

func (s *Signup) Activate() {
	s.activate(nil)
}

func (s *Signup) Deactivate() {
	s.deactivate()
}

// Submit validates the form and creates the user. An invalid form is returned
// as error and nothing is sent.
func (s *Signup) Submit(ctx context.Context, form SignupForm) (SignupState, error) {
	if err := form.validate(); err != nil {
		return SignupState{}, err
	}

	req, err := s.begin(ctx, slotSignup)
	if err != nil {
		return SignupState{}, err
	}

	created, err := s.api.AddUser(req.ctx, coachapi.User{
		Name:     strings.TrimSpace(form.Name),
		Email:    strings.TrimSpace(form.Email),
		Password: form.Password,
	})
	if !req.done() {
		return SignupState{}, nil
	}
	if err != nil {
		log.Errorf("signup: %s", err)
		return SignupState{Message: MsgSignupFailed}, nil
	}

	var user coachapi.User
	if created != nil {
		user = *created
	}
	user.Password = ""
	next := LandingPath
	if user.UserID != 0 {
		next += "/" + strconv.Itoa(user.UserID)
	}
	log.Infof("signup: account created, user id [%d]", user.UserID)

	return SignupState{User: &user, Message: MsgSignedUp, Next: next}, nil
}
