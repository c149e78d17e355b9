// gh-clonestats is a GitHub CLI extension that reports and charts clone
// traffic for the repositories of a GitHub account.
//
// Usage:
//
//	gh clonestats octocat
//	gh clonestats view all_traffic_report.json
package main

import "github.com/kyleking/gh-clonestats/cmd"

func main() {
	cmd.Execute()
}
