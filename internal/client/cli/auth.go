package cli

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/dmitrijs2005/sonarauth/internal/client/prover"
	"github.com/dmitrijs2005/sonarauth/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register generates a fresh keypair, submits the public key under the
// chosen username and seals the private key into the local key file.
// The passphrase is wiped before returning.
func (a *App) Register(ctx context.Context) error {
	userName, err := getSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		return err
	}

	passphrase, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(passphrase)

	kp, err := prover.GenerateKeypair(a.group)
	if err != nil {
		return err
	}

	if err := a.api.Register(ctx, userName, kp.PubKey); err != nil {
		return err
	}

	if err := a.keys.Save(userName, kp.PrivKey, passphrase); err != nil {
		return fmt.Errorf("registered on server, but saving the key failed: %w", err)
	}

	fmt.Println("Success!")
	return nil
}

// Login runs one full identification round: open the key file, commit,
// fetch the challenge and send the response. On success the client holds
// a credential and a.userName is set.
func (a *App) Login(ctx context.Context) error {
	userName, err := getSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		return err
	}

	passphrase, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(passphrase)

	privKey, err := a.keys.Load(userName, passphrase)
	if err != nil {
		log.Printf("Could not open key for %s: %s", userName, err.Error())
		return err
	}

	com, err := prover.Commit(a.group)
	if err != nil {
		return err
	}

	challenge, err := a.api.Challenge(ctx, userName, com.R)
	if err != nil {
		log.Printf("Login unsuccessfull: %s", err.Error())
		return err
	}

	response, err := prover.Respond(a.group, com, challenge, privKey)
	if err != nil {
		return err
	}

	if err := a.api.Verify(ctx, userName, response); err != nil {
		log.Printf("Login unsuccessfull: %s", err.Error())
		return err
	}

	a.userName = userName
	log.Printf("Login successfull")
	return nil
}

// Whoami asks the server to validate the current credential and prints
// the username it is bound to.
func (a *App) Whoami(ctx context.Context) error {
	userName, err := a.api.ValidateToken(ctx)
	if err != nil {
		log.Printf("Credential check failed: %s", err.Error())
		return err
	}
	fmt.Println(userName)
	return nil
}

// Unregister removes the identity on the server and drops the local key.
func (a *App) Unregister(ctx context.Context) error {
	if !a.isLoggedIn() {
		fmt.Println("Log in first")
		return nil
	}

	if err := a.api.Unregister(ctx); err != nil {
		log.Printf("Unregister failed: %s", err.Error())
		return err
	}

	if err := a.keys.Delete(a.userName); err != nil {
		log.Printf("Identity removed on server, local key cleanup failed: %s", err.Error())
	}

	a.userName = ""
	fmt.Println("Identity removed")
	return nil
}

// Logout forgets the session credential.
func (a *App) Logout(ctx context.Context) error {
	a.userName = ""
	return nil
}

// Ping checks server liveness.
func (a *App) Ping(ctx context.Context) error {
	if err := a.api.Ping(ctx); err != nil {
		log.Printf("Server unavailable: %s", err.Error())
		return err
	}
	fmt.Println("OK")
	return nil
}
