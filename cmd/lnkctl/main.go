// Command lnkctl inspects Windows shell link (.lnk) files.
package main

func main() {
	execute()
}
