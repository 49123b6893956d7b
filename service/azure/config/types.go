package azureconfig

import (
	"github.com/Azure/azure-sdk-for-go/sdk/azidentity"
)

type service struct {
	credential *azidentity.DefaultAzureCredential
}

type CredentialService interface {
	GetCredential() *azidentity.DefaultAzureCredential
}
