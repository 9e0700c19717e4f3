package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"chatjack-server/pkg/bank"
	"chatjack-server/pkg/db"

	"github.com/sirupsen/logrus"
)

var command = flag.String("c", "bankroll", "specifies the command (bankroll, set-bankroll)")
var actorID = flag.String("id", "", "the actor ID")
var amount = flag.Int("amount", 0, "the bankroll amount for set-bankroll")

func main() {
	flag.Parse()

	if *actorID == "" {
		logrus.Fatal("-id is required")
	}

	store := bank.NewPostgres(db.Instance())

	switch *command {
	case "bankroll":
		val, found, err := store.Bankroll(context.Background(), *actorID)
		if err != nil {
			logrus.WithError(err).Fatal("could not load bankroll")
		}

		if !found {
			fmt.Printf("no bankroll on record for %s\n", *actorID)
			os.Exit(1)
		}

		fmt.Printf("%s: %d\n", *actorID, val)
	case "set-bankroll":
		if err := store.SaveBankroll(context.Background(), *actorID, *amount); err != nil {
			logrus.WithError(err).Fatal("could not save bankroll")
		}

		fmt.Printf("set bankroll for %s to %d\n", *actorID, *amount)
	default:
		logrus.WithField("command", *command).Fatal("unknown command")
	}
}
