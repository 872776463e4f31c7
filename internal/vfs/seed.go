package vfs

// DefaultHome returns a fresh copy of the player's home directory.
func DefaultHome() *Node {
	return NewDir(Entries{
		"documents": NewDir(Entries{
			"project_alpha": NewDir(Entries{
				"notes.txt":     NewFile("Project Alpha: Initial thoughts and plans.\n- Secure the mainframe.\n- Bypass firewall."),
				"source_code.c": NewFile("// Placeholder C code\n#include <stdio.h>\nint main() { printf(\"Hello, Alpha!\\n\"); return 0; }"),
			}),
			"personal_journal.txt": NewFile("Day 42: The simulation feels more real every day. Or is it?"),
			"work_report.docx":     NewFile("[DOCX content - not plain text]"),
		}),
		"downloads": NewDir(Entries{
			"tool_v1.2.zip":      NewFile("[ZIP archive data]"),
			"important_data.csv": NewFile("ID,Value1,Value2\n1,100,200\n2,150,250"),
		}),
		"scripts": NewDir(Entries{
			"exploit.py":       NewFile("print('Executing exploit... Access granted.')"),
			"scan.sh":          NewFile("#!/bin/bash\necho 'Scanning network...'\nfor i in {1..5}; do echo \"Host 192.168.1.$i found\"; sleep 0.5; done"),
			"backup_script.py": NewFile("#!/usr/bin/env python\nprint('backing up files...')"),
		}),
		"pictures": NewDir(Entries{
			"old_photo.jpg": NewFile("[JPEG data]"),
		}),
		".config": NewDir(Entries{
			"app_settings.ini": NewFile("[Settings]\nresolution=1920x1080\nuser_token=xxxx-xxxx-xxxx"),
		}),
		"notes.txt":     NewFile("Remember to check the server logs.\nPasswords might be weak.\nFind the backdoor in /var/www."),
		".bash_history": NewFile("ls -la\ncd scripts\n./exploit.py\ncat ~/notes.txt"),
	})
}

// DefaultRoot returns a fresh copy of the "/" tree.
func DefaultRoot() *Node {
	return NewDir(Entries{
		"bin": NewDir(Entries{
			"sh":   NewFile("[shell binary]"),
			"bash": NewFile("[bash binary]"),
			"ls":   NewFile("[ls binary]"),
			"cat":  NewFile("[cat binary]"),
		}),
		"etc": NewDir(Entries{
			"passwd": NewFile("root:x:0:0:root:/root:/bin/bash\ndaemon:x:1:1:daemon:/usr/sbin:/usr/sbin/nologin\nhacker:x:1000:1000:Hacker,,,:/home/hacker:/bin/bash"),
			"shadow": NewFile("[ACCESS DENIED - Permission Denied]"),
			"hosts":  NewFile("127.0.0.1 localhost\n::1 localhost"),
		}),
		"var": NewDir(Entries{
			"log": NewDir(Entries{
				"auth.log": NewFile("May 10 06:00:00 kali sshd[1234]: Accepted publickey for hacker from 10.0.2.2 port 22 ssh2\n" +
					"May 10 06:05:17 kali sudo: hacker : TTY=pts/0 ; PWD=/home/hacker ; USER=root ; COMMAND=/usr/bin/apt update"),
				"syslog": NewFile("May 10 06:00:00 kali systemd[1]: Starting Daily apt download activities...\n" +
					"May 10 06:15:00 kali kernel: [   42.133700] usb 1-1: new high-speed USB device number 2 using xhci_hcd"),
			}),
			"www": NewDir(Entries{
				"html": NewDir(Entries{
					"index.html": NewFile("<html><body><h1>It works!</h1><p>This is the default web page for this server.</p></body></html>"),
				}),
			}),
		}),
		"tmp": NewDir(Entries{
			"tempfile.tmp": NewFile("Temporary data..."),
		}),
		"usr": NewDir(Entries{
			"local": NewDir(Entries{
				"bin": NewDir(Entries{
					"custom_tool": NewFile("[custom tool binary]"),
				}),
			}),
		}),
	})
}

// DefaultCorrupted lists the items flagged in a freshly seeded world.
func DefaultCorrupted() []string {
	return []string{
		"~/documents/personal_journal.txt",
		"~/scripts/exploit.py",
		"/var/log/auth.log",
		"~/documents/project_alpha",
		"/",
	}
}
