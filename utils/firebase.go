package utils

import (
	"context"
	"log"

	"broheal/config"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"firebase.google.com/go/v4/messaging"
	"google.golang.org/api/option"
)

// FCMClient is the Firebase Cloud Messaging client used for push delivery.
var FCMClient *messaging.Client

// FirebaseAuthClient verifies Firebase phone-auth ID tokens.
var FirebaseAuthClient *auth.Client

// FirebaseInit initializes the Firebase App, Messaging and Auth clients.
func FirebaseInit() {
	ctx := context.Background()
	opt := option.WithCredentialsFile(config.FirebaseServiceAccountKeyPath)

	app, err := firebase.NewApp(ctx, nil, opt)
	if err != nil {
		log.Fatalf("firebase: error initializing app: %v", err)
	}

	msgClient, err := app.Messaging(ctx)
	if err != nil {
		log.Fatalf("firebase: error getting Messaging client: %v", err)
	}
	FCMClient = msgClient

	authClient, err := app.Auth(ctx)
	if err != nil {
		log.Fatalf("firebase: error getting Auth client: %v", err)
	}
	FirebaseAuthClient = authClient
}

// VerifyFirebaseIDToken checks a Firebase phone-auth ID token and returns the
// phone number it attests, if any.
func VerifyFirebaseIDToken(ctx context.Context, idToken string) (string, error) {
	token, err := FirebaseAuthClient.VerifyIDToken(ctx, idToken)
	if err != nil {
		return "", err
	}
	phone, _ := token.Claims["phone_number"].(string)
	return phone, nil
}
