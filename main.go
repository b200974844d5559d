package main

import "github.com/SundayYogurt/social_user_service/cmd"

func main() {
	cmd.Execute()
}
