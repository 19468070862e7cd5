// Package hubsdk is the Go client for the CareerHub API and the home of its
// wire types.
//
// The server uses the same request/response structs and APIError to write
// responses, so the client and server cannot drift apart.
//
// Unauthenticated calls live on SDKClient:
//
//	client := hubsdk.NewSDKClient("http://localhost:8080")
//	res, err := client.Login(ctx, "a@x.com", "secret")
//	switch res.Result {
//	case hubsdk.ResultTokenIssued:
//		session := client.NewSession(res.Token)
//		tasks, err := session.MyTasks(ctx)
//	case hubsdk.ResultSetupRequired:
//		// show res.QRCode, then client.VerifyTwoFactorSetupLogin
//	case hubsdk.ResultChallengeRequired:
//		// ask for a code, then client.VerifyTwoFactorLogin or the WhatsApp pair
//	}
//
// Every non-2xx response is returned as an *APIError carrying the status code,
// the machine readable code and a description.
package hubsdk
