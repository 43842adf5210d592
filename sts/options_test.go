package sts

import (
	"context"
	"os"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	awssts "github.com/aws/aws-sdk-go-v2/service/sts"
	"github.com/stretchr/testify/suite"
)

type optionsTestSuite struct {
	suite.Suite
}

func (o *optionsTestSuite) SetupTest() {
	os.Clearenv()
}

func (o *optionsTestSuite) TestGetClient() {
	// no options
	client, err := getClient(context.Background(), Options{})
	o.NoError(err)
	o.NotNil(client, "client is set")

	// options set
	client, err = getClient(context.Background(), Options{
		AccessKeyID:     "mykey",
		SecretAccessKey: "mysecret",
		Region:          "some-region",
		Endpoint:        "http://localhost:4566",
	})
	o.NoError(err)
	o.Require().NotNil(client)
	opts := client.(*awssts.Client).Options()
	o.Equal("some-region", opts.Region, "region is set")
	o.Equal("http://localhost:4566", aws.ToString(opts.BaseEndpoint), "endpoint is set")

	creds, err := opts.Credentials.Retrieve(context.Background())
	o.NoError(err)
	o.Equal("mykey", creds.AccessKeyID, "static credentials are set")
}

func TestOptions(t *testing.T) {
	suite.Run(t, new(optionsTestSuite))
}
