// Package tms provides typed access to the gateway's Token Management
// Service resources over the signing client.
//
// The resource shapes and paths are the gateway's contract; this package
// carries them through without business logic:
//
//	c := client.NewGatewayClient(creds, host, nil)
//	customers := tms.NewCustomersService(c)
//
//	created, err := customers.Create(ctx, &tms.Customer{
//	    BuyerInformation: &tms.BuyerInformation{Email: "a@b.com"},
//	})
//
// Non-2xx responses surface as *client.APIError.
package tms
